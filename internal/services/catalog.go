package services

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/database/authors"
	"github.com/mrlokans/librarian/internal/database/books"
)

// Catalog bundles the database connection with both repositories, wired so
// the book repository resolves authors through the author repository.
type Catalog struct {
	Database     *database.Database
	Authors      *authors.Repository
	Books        *books.Repository
	DeletePolicy database.DeletePolicy
}

// OpenCatalog connects to the configured database. A connection failure is
// returned to the caller, which is expected to abort.
func OpenCatalog(cfg *config.Config) (*Catalog, error) {
	policy, err := database.ParseDeletePolicy(string(cfg.Library.AuthorDeletePolicy))
	if err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB, authorRepo,
		books.WithCaseSensitiveSearch(cfg.Library.CaseSensitiveSearch))

	return &Catalog{
		Database:     db,
		Authors:      authorRepo,
		Books:        bookRepo,
		DeletePolicy: policy,
	}, nil
}

// Initialize makes sure both tables exist. Failures are logged and joined
// into the returned error; callers may ignore it and let individual
// operations fail later.
func (c *Catalog) Initialize() error {
	return errors.Join(c.Authors.Initialize(), c.Books.Initialize())
}

// DropTables drops both tables, books first.
func (c *Catalog) DropTables() error {
	return errors.Join(c.Books.DeleteTable(), c.Authors.DeleteTable())
}

func (c *Catalog) Close() error {
	if err := c.Database.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close database")
		return err
	}
	return nil
}
