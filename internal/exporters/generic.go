package exporters

import "github.com/mrlokans/librarian/internal/entities"

type CatalogExporter interface {
	Export(authors []entities.Author, books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	AuthorsExported int `json:"authors_exported"`
	BooksExported   int `json:"books_exported"`
}
