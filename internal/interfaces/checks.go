package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/librarian/internal/database/authors"
	"github.com/mrlokans/librarian/internal/database/books"
	"github.com/mrlokans/librarian/internal/exporters"
	"github.com/mrlokans/librarian/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// AuthorStore implementations
var _ services.AuthorStore = (*authors.Repository)(nil)

// BookStore implementations
var _ services.BookStore = (*books.Repository)(nil)

// =============================================================================
// Export
// =============================================================================

// CatalogExporter implementations
var _ exporters.CatalogExporter = (*exporters.XLSXExporter)(nil)
