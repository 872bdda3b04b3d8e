package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/librarian/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // validation errors, delete outcome
}

// ListResponse wraps a collection together with its size.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Total: len(items)}
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: "not_found"})
}

// respondValidationError sends a 400 with per-field messages.
func respondValidationError(c *gin.Context, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Code: "validation", Details: fields})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "validation"})
}

// respondStoreError maps a store error onto a response. The actual error is
// logged but not exposed to the client.
func respondStoreError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, database.ErrUpdateTargetMissing):
		respondNotFound(c, "record")
	case errors.Is(err, database.ErrDanglingAuthor):
		log.Error().Err(err).Str("context", context).Str("request_id", c.GetString(requestIDKey)).Msg("Catalog integrity error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "book references a missing author", Code: "dangling_author"})
	default:
		respondInternalError(c, err, context)
	}
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Error().Err(err).Str("context", context).Str("request_id", c.GetString(requestIDKey)).Msg("Internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondDeleteResult turns a delete outcome into 200, 404 or 409.
func respondDeleteResult(c *gin.Context, resource string, result database.DeleteResult) {
	switch result.Status {
	case database.DeleteStatusNotFound:
		respondNotFound(c, resource)
	case database.DeleteStatusBlocked:
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   resource + " still has dependent books",
			Code:    "blocked",
			Details: result,
		})
	default:
		c.JSON(http.StatusOK, result)
	}
}

// --- Parameter Parsing ---

// parseIDParam extracts a positive integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}

// parseQueryInt extracts a required integer from query parameters.
func parseQueryInt(c *gin.Context, paramName string) (int, bool) {
	raw := c.Query(paramName)
	if raw == "" {
		respondBadRequest(c, paramName+" is required")
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return n, true
}
