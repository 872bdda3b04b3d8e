package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/database/authors"
	"github.com/mrlokans/librarian/internal/database/books"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController reports database reachability and whether the catalog
// tables exist. Missing tables do not make the service unhealthy: they are
// created on first use.
type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db == nil {
		checks["database"] = "not configured"
	} else if err := h.ping(); err != nil {
		checks["database"] = "error: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "ok"
		migrator := h.db.DB.Migrator()
		for _, table := range []string{authors.TableName, books.TableName} {
			if migrator.HasTable(table) {
				checks[table] = "present"
			} else {
				checks[table] = "missing"
			}
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

func (h *HealthController) ping() error {
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
