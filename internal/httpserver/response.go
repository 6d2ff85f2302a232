package httpserver

import (
	"errors"
	"net/http"

	"manox/internal/domain"

	"github.com/gin-gonic/gin"
)

// errorJSON mirrors the original API's error body shape.
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// serverError maps repository/service failures onto the API contract:
// ErrNotFound becomes a 404, everything else a generic 500.
func serverError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		errorJSON(c, http.StatusNotFound, "Not found")
		return
	}
	errorJSON(c, http.StatusInternalServerError, "Server error")
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func paginate(page, limit, total int) pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
