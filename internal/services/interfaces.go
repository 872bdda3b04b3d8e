package services

import (
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

// This file defines the store contracts consumed by the console menu and the
// HTTP API. The gorm repositories in internal/database implement them.

// AuthorStore provides CRUD and table lifecycle for authors.
type AuthorStore interface {
	Initialize() error
	GetAll() ([]entities.Author, error)
	GetByID(id int64) (entities.Author, bool, error)
	Save(author *entities.Author) error
	DeleteByID(id int64) (database.DeleteResult, error)
	DeleteTable() error
}

// BookStore provides CRUD, searches and table lifecycle for books. Every
// returned book carries its hydrated author.
type BookStore interface {
	Initialize() error
	GetAll() ([]entities.Book, error)
	GetByID(id int64) (entities.Book, bool, error)
	Save(book *entities.Book) error
	DeleteByID(id int64) (database.DeleteResult, error)
	DeleteTable() error

	SearchByAuthorName(text string) ([]entities.Book, bool, error)
	GetBetweenYears(y1, y2 int) ([]entities.Book, bool, error)

	// DeleteAuthor removes an author, handling its books according to policy.
	DeleteAuthor(authorID int64, policy database.DeletePolicy) (database.DeleteResult, error)
}
