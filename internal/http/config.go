package http

import (
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/services"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Database *database.Database
	Authors  services.AuthorStore
	Books    services.BookStore

	// Used by DELETE /api/authors/:id when the request names no policy
	DefaultDeletePolicy database.DeletePolicy

	// Application info
	Version string
}
