// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorStore: CRUD and table lifecycle for authors (internal/services/interfaces.go)
//   - BookStore: CRUD, searches, author deletion policies and table lifecycle
//     for books (internal/services/interfaces.go)
//
// Both are implemented by gorm repositories under internal/database. The book
// repository is built on top of the author repository: it cascades saves to
// the author and hydrates every book's author through it.
//
// ## Export Interfaces
//
//   - CatalogExporter: writes authors and books somewhere (internal/exporters/generic.go)
//
// # Adding a New Store Backend
//
//  1. Implement AuthorStore and BookStore, keeping the contract that a
//     missing row is reported as (zero, false, nil) and never as an error.
//
//  2. Add compile-time checks to checks.go:
//
//     var _ services.AuthorStore = (*MyAuthorStore)(nil)
//
//  3. Wire it in services.OpenCatalog.
//
// # Adding a New Export Format
//
//  1. Implement CatalogExporter in internal/exporters/
//
//     type CSVExporter struct { dir string }
//
//     func (e *CSVExporter) Export(authors []entities.Author, books []entities.Book) (ExportResult, error)
//
//  2. Add a flag or command in internal/cli/export.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
