package services

import (
	"fmt"

	"github.com/mrlokans/librarian/internal/entities"
)

type seedBook struct {
	title       string
	publishYear int
	pagesCount  int
}

type seedAuthor struct {
	name      string
	birthYear int
	books     []seedBook
}

var sampleCatalog = []seedAuthor{
	{"George Orwell", 1903, []seedBook{
		{"1984", 1949, 328},
		{"Animal Farm", 1945, 112},
	}},
	{"Aldous Huxley", 1894, []seedBook{
		{"Brave New World", 1932, 311},
	}},
	{"Yevgeny Zamyatin", 1884, []seedBook{
		{"We", 1924, 226},
	}},
	{"Ray Bradbury", 1920, []seedBook{
		{"Fahrenheit 451", 1953, 256},
	}},
}

// Seed saves a small sample catalog through store and returns the number of
// books written. Authors are saved by the cascade of their first book.
func Seed(store BookStore) (int, error) {
	saved := 0
	for _, sa := range sampleCatalog {
		author := entities.NewAuthor(sa.name, sa.birthYear)
		for _, sb := range sa.books {
			book := entities.NewBook(sb.title, sb.publishYear, sb.pagesCount, author)
			if err := store.Save(&book); err != nil {
				return saved, fmt.Errorf("failed to seed %q: %w", sb.title, err)
			}
			author = book.Author
			saved++
		}
	}
	return saved, nil
}
