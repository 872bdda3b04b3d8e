// Package authors provides database operations for the authors table.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	repo.Initialize()
//	author := entities.NewAuthor("Orwell", 1903)
//	err := repo.Save(&author) // author.ID is now persisted
package authors

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

const TableName = "authors"

// Row is the stored form of an author.
type Row struct {
	ID        int64  `gorm:"column:id_author;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;size:200"`
	BirthYear int    `gorm:"column:birth_year"`
}

func (Row) TableName() string {
	return TableName
}

func (r Row) toEntity() entities.Author {
	return entities.Author{
		ID:        entities.PersistedID(r.ID),
		Name:      r.Name,
		BirthYear: r.BirthYear,
	}
}

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository that runs its statements inside tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Initialize creates the authors table if it does not exist. A failure is
// logged and returned, but callers may carry on.
func (r *Repository) Initialize() error {
	migrator := r.db.Migrator()
	if migrator.HasTable(&Row{}) {
		return nil
	}
	if err := migrator.CreateTable(&Row{}); err != nil {
		log.Warn().Err(err).Str("table", TableName).Msg("Could not create table")
		return fmt.Errorf("failed to create %s table: %w", TableName, err)
	}
	log.Info().Str("table", TableName).Msg("Created table")
	return nil
}

// GetAll retrieves every author ordered by id.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var rows []Row
	if err := r.db.Order("id_author").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	authors := make([]entities.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, row.toEntity())
	}
	return authors, nil
}

// GetByID retrieves an author. The boolean is false when no row has that id.
func (r *Repository) GetByID(id int64) (entities.Author, bool, error) {
	var row Row
	err := r.db.Where("id_author = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Author{}, false, nil
	}
	if err != nil {
		return entities.Author{}, false, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return row.toEntity(), true, nil
}

// Save inserts an unpersisted author, writing the generated id back onto it,
// or updates the row of a persisted one.
func (r *Repository) Save(author *entities.Author) error {
	if id, ok := author.ID.Get(); ok {
		return r.update(id, author)
	}
	return r.insert(author)
}

func (r *Repository) insert(author *entities.Author) error {
	row := Row{Name: author.Name, BirthYear: author.BirthYear}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	if row.ID <= 0 {
		return fmt.Errorf("author %q: %w", author.Name, database.ErrNoGeneratedKey)
	}
	author.ID = entities.PersistedID(row.ID)
	return nil
}

func (r *Repository) update(id int64, author *entities.Author) error {
	result := r.db.Model(&Row{}).Where("id_author = ?", id).Updates(map[string]any{
		"name":       author.Name,
		"birth_year": author.BirthYear,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update author %d: %w", id, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	// MySQL reports changed rows, not matched rows, so an update that
	// rewrites identical values also lands here.
	exists, err := r.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("author %d: %w", id, database.ErrUpdateTargetMissing)
	}
	return nil
}

// Exists reports whether an author row with id is stored.
func (r *Repository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&Row{}).Where("id_author = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check author %d: %w", id, err)
	}
	return count > 0, nil
}

// DeleteByID removes a single author. A missing id is reported as
// DeleteStatusNotFound rather than an error. Books referencing the author
// are left untouched; see books.Repository.DeleteAuthor for policy-aware
// deletion.
func (r *Repository) DeleteByID(id int64) (database.DeleteResult, error) {
	exists, err := r.Exists(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	if !exists {
		log.Info().Int64("id", id).Msg("No author with this id, nothing to delete")
		return database.DeleteResult{Status: database.DeleteStatusNotFound}, nil
	}

	if err := r.db.Where("id_author = ?", id).Delete(&Row{}).Error; err != nil {
		return database.DeleteResult{}, fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	return database.DeleteResult{Status: database.DeleteStatusDeleted}, nil
}

// DeleteTable drops the authors table if it exists. A failure is logged and
// returned, but callers may carry on.
func (r *Repository) DeleteTable() error {
	if err := r.db.Migrator().DropTable(&Row{}); err != nil {
		log.Warn().Err(err).Str("table", TableName).Msg("Could not drop table")
		return fmt.Errorf("failed to drop %s table: %w", TableName, err)
	}
	log.Info().Str("table", TableName).Msg("Dropped table")
	return nil
}
