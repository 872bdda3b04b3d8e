package exporters

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/librarian/internal/entities"
)

const (
	AuthorsSheet = "Authors"
	BooksSheet   = "Books"
)

var (
	authorHeaders = []any{"ID", "Name", "Birth Year"}
	bookHeaders   = []any{"ID", "Title", "Publish Year", "Pages Count", "Author ID", "Author"}
)

// XLSXExporter writes the catalog to a workbook with one sheet per table.
type XLSXExporter struct {
	path string
}

func NewXLSXExporter(path string) *XLSXExporter {
	return &XLSXExporter{path: path}
}

func (e *XLSXExporter) Export(authors []entities.Author, books []entities.Book) (ExportResult, error) {
	f, err := BuildWorkbook(authors, books)
	if err != nil {
		return ExportResult{}, err
	}
	defer f.Close()

	if err := f.SaveAs(e.path); err != nil {
		return ExportResult{}, fmt.Errorf("failed to save workbook %s: %w", e.path, err)
	}

	result := ExportResult{AuthorsExported: len(authors), BooksExported: len(books)}
	log.Info().
		Str("path", e.path).
		Int("authors", result.AuthorsExported).
		Int("books", result.BooksExported).
		Msg("Catalog exported")
	return result, nil
}

// BuildWorkbook lays out authors and books on separate sheets with a bold
// header row. The caller owns the returned file and must Close it.
func BuildWorkbook(authors []entities.Author, books []entities.Book) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", AuthorsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(BooksSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	authorRows := make([][]any, 0, len(authors))
	for _, a := range authors {
		authorRows = append(authorRows, []any{a.ID.Int64(), a.Name, a.BirthYear})
	}
	bookRows := make([][]any, 0, len(books))
	for _, b := range books {
		bookRows = append(bookRows, []any{
			b.ID.Int64(), b.Title, b.PublishYear, b.PagesCount, b.Author.ID.Int64(), b.Author.Name,
		})
	}

	if err := writeSheet(f, AuthorsSheet, authorHeaders, authorRows); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, BooksSheet, bookHeaders, bookRows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
