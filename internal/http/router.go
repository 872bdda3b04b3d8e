package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.Authors, cfg.Books, cfg.DefaultDeletePolicy)
	booksController := NewBooksController(cfg.Books, cfg.Authors)

	router.GET("/health", health.Status)

	api := router.Group("/api")

	api.GET("/authors", authorsController.List)
	api.POST("/authors", authorsController.Create)
	api.GET("/authors/:id", authorsController.Get)
	api.PUT("/authors/:id", authorsController.Update)
	api.DELETE("/authors/:id", authorsController.Delete)

	// Static segments first so they are not taken for an :id
	api.GET("/books/search", booksController.SearchByAuthor)
	api.GET("/books/years", booksController.BetweenYears)
	api.GET("/books", booksController.List)
	api.POST("/books", booksController.Create)
	api.GET("/books/:id", booksController.Get)
	api.PUT("/books/:id", booksController.Update)
	api.DELETE("/books/:id", booksController.Delete)

	return router
}
