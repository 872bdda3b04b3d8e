package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/services"
)

// AuthorRequest is the body of POST and PUT /api/authors.
type AuthorRequest struct {
	Name      string `json:"name"`
	BirthYear int    `json:"birth_year"`
}

func (r AuthorRequest) toEntity() entities.Author {
	return entities.NewAuthor(r.Name, r.BirthYear)
}

type AuthorsController struct {
	authors       services.AuthorStore
	books         services.BookStore
	defaultPolicy database.DeletePolicy
}

func NewAuthorsController(authors services.AuthorStore, books services.BookStore, defaultPolicy database.DeletePolicy) *AuthorsController {
	return &AuthorsController{authors: authors, books: books, defaultPolicy: defaultPolicy}
}

// List returns every author ordered by id
// GET /api/authors
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.authors.GetAll()
	if err != nil {
		respondStoreError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, newListResponse(authors))
}

// GET /api/authors/:id
func (ac *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	author, found, err := ac.authors.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get author")
		return
	}
	if !found {
		respondNotFound(c, "author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// POST /api/authors
func (ac *AuthorsController) Create(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	author := req.toEntity()
	if err := author.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}
	if err := ac.authors.Save(&author); err != nil {
		respondStoreError(c, err, "create author")
		return
	}
	c.JSON(http.StatusCreated, author)
}

// Update replaces name and birth year of an existing author
// PUT /api/authors/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	author := req.toEntity()
	author.ID = entities.PersistedID(id)
	if err := author.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}
	if err := ac.authors.Save(&author); err != nil {
		respondStoreError(c, err, "update author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// Delete removes an author. The optional policy query parameter overrides
// the configured policy for books that still reference the author.
// DELETE /api/authors/:id?policy=restrict|cascade
func (ac *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	policy := ac.defaultPolicy
	if raw := c.Query("policy"); raw != "" {
		parsed, err := database.ParseDeletePolicy(raw)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		policy = parsed
	}

	result, err := ac.books.DeleteAuthor(id, policy)
	if err != nil {
		respondStoreError(c, err, "delete author")
		return
	}
	respondDeleteResult(c, "author", result)
}
