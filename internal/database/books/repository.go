// Package books provides database operations for the books table.
//
// Books are always returned with their Author hydrated through the authors
// repository, and saving a book saves its author first so the stored
// author_id always matches a persisted author.
//
// # Usage
//
//	authorRepo := authors.NewRepository(db)
//	repo := books.NewRepository(db, authorRepo, books.WithCaseSensitiveSearch(false))
//	book := entities.NewBook("1984", 1949, 328, entities.NewAuthor("Orwell", 1903))
//	err := repo.Save(&book) // both book.ID and book.Author.ID are now persisted
package books

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/database/authors"
	"github.com/mrlokans/librarian/internal/entities"
)

const TableName = "books"

// Row is the stored form of a book. AuthorID is a logical foreign key to
// authors.id_author; no constraint is declared.
type Row struct {
	ID          int64  `gorm:"column:id_book;primaryKey;autoIncrement"`
	Title       string `gorm:"column:title;size:200"`
	PagesCount  int    `gorm:"column:pages_count"`
	PublishYear int    `gorm:"column:publish_year"`
	AuthorID    int64  `gorm:"column:author_id"`
}

func (Row) TableName() string {
	return TableName
}

func (r Row) toEntity(author entities.Author) entities.Book {
	return entities.Book{
		ID:          entities.PersistedID(r.ID),
		Title:       r.Title,
		PublishYear: r.PublishYear,
		PagesCount:  r.PagesCount,
		Author:      author,
	}
}

// Option configures a Repository.
type Option func(*Repository)

// WithCaseSensitiveSearch pins how SearchByAuthorName compares names. The
// default is case-insensitive.
func WithCaseSensitiveSearch(enabled bool) Option {
	return func(r *Repository) {
		r.caseSensitive = enabled
	}
}

// Repository handles all book database operations.
type Repository struct {
	db            *gorm.DB
	authors       *authors.Repository
	caseSensitive bool
}

// NewRepository creates a new books repository that resolves authors through
// authorRepo.
func NewRepository(db *gorm.DB, authorRepo *authors.Repository, opts ...Option) *Repository {
	r := &Repository{
		db:      db,
		authors: authorRepo,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) withTx(tx *gorm.DB) *Repository {
	return &Repository{
		db:            tx,
		authors:       r.authors.WithTx(tx),
		caseSensitive: r.caseSensitive,
	}
}

// Initialize creates the books table if it does not exist. A failure is
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

// GetAll retrieves every book ordered by id.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var rows []Row
	if err := r.db.Order("id_book").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return r.hydrate(rows)
}

// GetByID retrieves a book. The boolean is false when no row has that id.
func (r *Repository) GetByID(id int64) (entities.Book, bool, error) {
	var row Row
	err := r.db.Where("id_book = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Book{}, false, nil
	}
	if err != nil {
		return entities.Book{}, false, fmt.Errorf("failed to get book %d: %w", id, err)
	}

	books, err := r.hydrate([]Row{row})
	if err != nil {
		return entities.Book{}, false, err
	}
	return books[0], true, nil
}

// hydrate materializes rows into books, resolving each author. A row whose
// author is gone fails the whole read with ErrDanglingAuthor.
func (r *Repository) hydrate(rows []Row) ([]entities.Book, error) {
	books := make([]entities.Book, 0, len(rows))
	for _, row := range rows {
		author, found, err := r.authors.GetByID(row.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load author of book %d: %w", row.ID, err)
		}
		if !found {
			return nil, fmt.Errorf("book %d references author %d: %w", row.ID, row.AuthorID, database.ErrDanglingAuthor)
		}
		books = append(books, row.toEntity(author))
	}
	return books, nil
}

// Save persists the book's author, then inserts or updates the book with
// author_id set to the author's id. Both steps share one transaction; on
// failure the ids on book and book.Author are restored.
func (r *Repository) Save(book *entities.Book) error {
	bookID, authorID := book.ID, book.Author.ID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := r.withTx(tx)
		if err := txRepo.authors.Save(&book.Author); err != nil {
			return fmt.Errorf("failed to save author of book %q: %w", book.Title, err)
		}
		return txRepo.saveRow(book)
	})
	if err != nil {
		book.ID = bookID
		book.Author.ID = authorID
		return err
	}
	return nil
}

func (r *Repository) saveRow(book *entities.Book) error {
	authorID, ok := book.Author.ID.Get()
	if !ok {
		return fmt.Errorf("book %q: author is not persisted", book.Title)
	}

	if id, ok := book.ID.Get(); ok {
		return r.update(id, authorID, book)
	}
	return r.insert(authorID, book)
}

func (r *Repository) insert(authorID int64, book *entities.Book) error {
	row := Row{
		Title:       book.Title,
		PagesCount:  book.PagesCount,
		PublishYear: book.PublishYear,
		AuthorID:    authorID,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	if row.ID <= 0 {
		return fmt.Errorf("book %q: %w", book.Title, database.ErrNoGeneratedKey)
	}
	book.ID = entities.PersistedID(row.ID)
	return nil
}

func (r *Repository) update(id, authorID int64, book *entities.Book) error {
	result := r.db.Model(&Row{}).Where("id_book = ?", id).Updates(map[string]any{
		"title":        book.Title,
		"pages_count":  book.PagesCount,
		"publish_year": book.PublishYear,
		"author_id":    authorID,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update book %d: %w", id, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	// MySQL reports changed rows, not matched rows.
	exists, err := r.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("book %d: %w", id, database.ErrUpdateTargetMissing)
	}
	return nil
}

// Exists reports whether a book row with id is stored.
func (r *Repository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&Row{}).Where("id_book = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check book %d: %w", id, err)
	}
	return count > 0, nil
}

// DeleteByID removes a single book. A missing id is reported as
// DeleteStatusNotFound rather than an error.
func (r *Repository) DeleteByID(id int64) (database.DeleteResult, error) {
	exists, err := r.Exists(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	if !exists {
		log.Info().Int64("id", id).Msg("No book with this id, nothing to delete")
		return database.DeleteResult{Status: database.DeleteStatusNotFound}, nil
	}

	if err := r.db.Where("id_book = ?", id).Delete(&Row{}).Error; err != nil {
		return database.DeleteResult{}, fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return database.DeleteResult{Status: database.DeleteStatusDeleted}, nil
}

// DeleteTable drops the books table if it exists. A failure is logged and
// returned, but callers may carry on.
func (r *Repository) DeleteTable() error {
	if err := r.db.Migrator().DropTable(&Row{}); err != nil {
		log.Warn().Err(err).Str("table", TableName).Msg("Could not drop table")
		return fmt.Errorf("failed to drop %s table: %w", TableName, err)
	}
	log.Info().Str("table", TableName).Msg("Dropped table")
	return nil
}
