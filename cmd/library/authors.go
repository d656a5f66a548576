package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

func getAuthors(c *gin.Context) {
	page, err := services.Authors.List(pageParams(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, page)
}

func getAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	author, err := services.Authors.GetByID(id)
	if err != nil {
		respondError(c, err, "Author not found")
		return
	}
	c.JSON(http.StatusOK, author)
}

func createAuthor(c *gin.Context) {
	var author models.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	author.ID = 0
	if err := services.Authors.Create(&author); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, author)
}

func updateAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var details models.Author
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	author, err := services.Authors.Update(id, &details)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
			return
		}
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, author)
}

func deleteAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := services.Authors.Delete(id); err != nil {
		respondError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}
