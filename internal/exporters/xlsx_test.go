package exporters

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/librarian/internal/entities"
)

func sampleCatalog() ([]entities.Author, []entities.Book) {
	orwell := entities.Author{ID: entities.PersistedID(1), Name: "Orwell", BirthYear: 1903}
	huxley := entities.Author{ID: entities.PersistedID(2), Name: "Huxley", BirthYear: 1894}
	books := []entities.Book{
		{ID: entities.PersistedID(1), Title: "1984", PublishYear: 1949, PagesCount: 328, Author: orwell},
		{ID: entities.PersistedID(2), Title: "Brave New World", PublishYear: 1932, PagesCount: 311, Author: huxley},
	}
	return []entities.Author{orwell, huxley}, books
}

func TestBuildWorkbook(t *testing.T) {
	authors, books := sampleCatalog()

	f, err := BuildWorkbook(authors, books)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{AuthorsSheet, BooksSheet}, f.GetSheetList())

	authorRows, err := f.GetRows(AuthorsSheet)
	require.NoError(t, err)
	require.Len(t, authorRows, 3)
	assert.Equal(t, []string{"ID", "Name", "Birth Year"}, authorRows[0])
	assert.Equal(t, []string{"1", "Orwell", "1903"}, authorRows[1])

	bookRows, err := f.GetRows(BooksSheet)
	require.NoError(t, err)
	require.Len(t, bookRows, 3)
	assert.Equal(t, []string{"2", "Brave New World", "1932", "311", "2", "Huxley"}, bookRows[2])
}

func TestBuildWorkbook_Empty(t *testing.T) {
	f, err := BuildWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(BooksSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestXLSXExporter_Export(t *testing.T) {
	authors, books := sampleCatalog()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	result, err := NewXLSXExporter(path).Export(authors, books)
	require.NoError(t, err)
	assert.Equal(t, ExportResult{AuthorsExported: 2, BooksExported: 2}, result)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(BooksSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1984", value)
}

func TestXLSXExporter_Export_BadPath(t *testing.T) {
	authors, books := sampleCatalog()
	path := filepath.Join(t.TempDir(), "missing", "catalog.xlsx")

	_, err := NewXLSXExporter(path).Export(authors, books)
	assert.Error(t, err)
}
