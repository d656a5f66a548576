package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

func getBorrowings(c *gin.Context) {
	page, err := services.Borrowings.List(pageParams(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, page)
}

func getBorrowing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	record, err := services.Borrowings.GetByID(id)
	if err != nil {
		respondError(c, err, "Borrowing record not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

func createBorrowing(c *gin.Context) {
	var record models.BorrowingRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record.ID = 0
	if err := services.Borrowings.Create(&record); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, record)
}

func updateBorrowing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var details models.BorrowingRecord
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := services.Borrowings.Update(id, &details)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Borrowing record not found"})
			return
		}
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, record)
}

func deleteBorrowing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := services.Borrowings.Delete(id); err != nil {
		respondError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// searchBorrowings accepts exactly one of userId or bookId. Zero parameters
// is a 400 unless search.allow_empty turns it into a plain list.
func searchBorrowings(c *gin.Context) {
	userIDStr := c.Query("userId")
	bookIDStr := c.Query("bookId")

	if userIDStr != "" && bookIDStr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of userId or bookId must be provided"})
		return
	}

	p := pageParams(c)
	if userIDStr == "" && bookIDStr == "" {
		if cfg != nil && cfg.Search.AllowEmpty {
			getBorrowings(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of userId or bookId must be provided"})
		return
	}

	var page *pagination.Page[models.BorrowingRecord]
	if userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		page, err = services.Borrowings.ByCustomer(uint(userID), p)
		if err != nil {
			respondError(c, err, "")
			return
		}
	} else {
		bookID, err := strconv.ParseUint(bookIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookId"})
			return
		}
		page, err = services.Borrowings.ByBook(uint(bookID), p)
		if err != nil {
			respondError(c, err, "")
			return
		}
	}
	c.JSON(http.StatusOK, page)
}
