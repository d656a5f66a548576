package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

// pageParams reads page/size/sortBy/sortOrder with the API defaults.
// Unparseable numbers fall back to the defaults rather than erroring.
func pageParams(c *gin.Context) pagination.Params {
	p := pagination.Default()
	if v, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && v >= 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("size", "10")); err == nil && v >= 1 {
		p.Size = v
	}
	p.SortBy = c.DefaultQuery("sortBy", "id")
	p.SortOrder = c.DefaultQuery("sortOrder", "asc")
	return p
}

// idParam parses the :id path segment, responding 400 itself on garbage.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto status codes: absent -> 404,
// bad query or failed validation -> 400, anything else -> 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var ve service.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, pagination.ErrInvalidSort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
