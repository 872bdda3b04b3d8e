// Package database provides the data access layer for the library catalog.
//
// # Architecture
//
// The database layer is organized into one sub-package per table:
//
//	database/
//	├── database.go      # Connection setup for sqlite, postgres and mysql
//	├── errors.go        # Sentinel errors shared by the repositories
//	├── outcome.go       # Delete outcomes and author delete policies
//	├── authors/         # authors table: CRUD and table lifecycle
//	└── books/           # books table: CRUD, searches, author deletion
//
// # Using Sub-packages
//
//	// Open a connection
//	db, err := database.NewDatabase(cfg.Database)
//
//	// The book repository resolves authors through the author repository
//	authorRepo := authors.NewRepository(db.DB)
//	bookRepo := books.NewRepository(db.DB, authorRepo)
//
//	// Saving a book saves its author first
//	book := entities.NewBook("1984", 1949, 328, entities.NewAuthor("George Orwell", 1903))
//	err = bookRepo.Save(&book)
//
// # Conventions
//
//   - A missing row is (zero, false, nil) for lookups and DeleteStatusNotFound
//     for deletes, never an error.
//   - Tables are created with Initialize and dropped with DeleteTable; there
//     are no migrations.
//   - The author_id column of books is a logical reference without a foreign
//     key constraint. Reading a book whose author is gone fails with
//     ErrDanglingAuthor.
//
// # Interface Implementations
//
//   - authors.Repository: implements services.AuthorStore
//   - books.Repository: implements services.BookStore
package database
