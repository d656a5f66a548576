package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

func getBooks(c *gin.Context) {
	page, err := services.Books.List(pageParams(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, page)
}

func getBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	book, err := services.Books.GetByID(id)
	if err != nil {
		respondError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, book)
}

func createBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book.ID = 0
	if err := services.Books.Create(&book); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, book)
}

func updateBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var details models.Book
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book, err := services.Books.Update(id, &details)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, book)
}

func deleteBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := services.Books.Delete(id); err != nil {
		respondError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// searchBooks accepts exactly one of title, author or isbn. Zero parameters
// is a 400 unless search.allow_empty turns it into a plain list.
func searchBooks(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")
	isbn := c.Query("isbn")

	provided := 0
	for _, s := range []string{title, author, isbn} {
		if s != "" {
			provided++
		}
	}
	if provided > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of title, author or isbn must be provided"})
		return
	}

	p := pageParams(c)
	if provided == 0 {
		if cfg != nil && cfg.Search.AllowEmpty {
			getBooks(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of title, author or isbn must be provided"})
		return
	}

	var page *pagination.Page[models.Book]
	var err error
	switch {
	case title != "":
		page, err = services.Books.SearchByTitle(title, p)
	case author != "":
		page, err = services.Books.SearchByAuthor(author, p)
	default:
		page, err = services.Books.SearchByIsbn(isbn, p)
	}
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, page)
}
