package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/services"
)

// BookRequest is the body of POST and PUT /api/books. The author is either
// an existing one referenced by AuthorID or a new one given inline.
type BookRequest struct {
	Title       string         `json:"title"`
	PublishYear int            `json:"publish_year"`
	PagesCount  int            `json:"pages_count"`
	AuthorID    *int64         `json:"author_id,omitempty"`
	Author      *AuthorRequest `json:"author,omitempty"`
}

type BooksController struct {
	books   services.BookStore
	authors services.AuthorStore
}

func NewBooksController(books services.BookStore, authors services.AuthorStore) *BooksController {
	return &BooksController{books: books, authors: authors}
}

// GET /api/books
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.books.GetAll()
	if err != nil {
		respondStoreError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, newListResponse(books))
}

// GET /api/books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, found, err := bc.books.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	if !found {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// POST /api/books
func (bc *BooksController) Create(c *gin.Context) {
	book, ok := bc.bindBook(c)
	if !ok {
		return
	}
	if err := bc.books.Save(&book); err != nil {
		respondStoreError(c, err, "create book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

// PUT /api/books/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, ok := bc.bindBook(c)
	if !ok {
		return
	}
	book.ID = entities.PersistedID(id)
	if err := bc.books.Save(&book); err != nil {
		respondStoreError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DELETE /api/books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result, err := bc.books.DeleteByID(id)
	if err != nil {
		respondStoreError(c, err, "delete book")
		return
	}
	respondDeleteResult(c, "book", result)
}

// SearchByAuthor finds books whose author name contains the query text.
// An empty result is a 200 with no data, not a 404.
// GET /api/books/search?author=...
func (bc *BooksController) SearchByAuthor(c *gin.Context) {
	text := c.Query("author")
	if text == "" {
		respondBadRequest(c, "author is required")
		return
	}
	books, _, err := bc.books.SearchByAuthorName(text)
	if err != nil {
		respondStoreError(c, err, "search books by author")
		return
	}
	c.JSON(http.StatusOK, newListResponse(books))
}

// GET /api/books/years?from=...&to=...
func (bc *BooksController) BetweenYears(c *gin.Context) {
	from, ok := parseQueryInt(c, "from")
	if !ok {
		return
	}
	to, ok := parseQueryInt(c, "to")
	if !ok {
		return
	}
	books, _, err := bc.books.GetBetweenYears(from, to)
	if err != nil {
		respondStoreError(c, err, "books between years")
		return
	}
	c.JSON(http.StatusOK, newListResponse(books))
}

// bindBook decodes and validates a BookRequest, resolving its author. On
// failure a response has already been written.
func (bc *BooksController) bindBook(c *gin.Context) (entities.Book, bool) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return entities.Book{}, false
	}

	var author entities.Author
	switch {
	case req.AuthorID != nil && req.Author != nil:
		respondBadRequest(c, "give either author_id or author, not both")
		return entities.Book{}, false
	case req.AuthorID != nil:
		existing, found, err := bc.authors.GetByID(*req.AuthorID)
		if err != nil {
			respondStoreError(c, err, "resolve book author")
			return entities.Book{}, false
		}
		if !found {
			respondNotFound(c, "author")
			return entities.Book{}, false
		}
		author = existing
	case req.Author != nil:
		author = req.Author.toEntity()
	default:
		respondBadRequest(c, "author_id or author is required")
		return entities.Book{}, false
	}

	book := entities.NewBook(req.Title, req.PublishYear, req.PagesCount, author)
	if err := book.Validate(); err != nil {
		respondValidationError(c, err)
		return entities.Book{}, false
	}
	return book, true
}
