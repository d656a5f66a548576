package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
)

func TestCreateBorrowingResolvesReferences(t *testing.T) {
	router := setupTest(t)
	mustCreateAuthor(t, "george orwell")
	mustCreateBook(t, "1984", 1)
	mustCreateCustomer(t, "sawy", "sawy@example.com")

	w := performRequest(router, "POST", "/api/v1/borrowings",
		`{"customerID":1,"bookID":1,"borrowDate":"2024-01-10","returnDate":"2024-01-24"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]json.RawMessage
	assert.NoError(t, jsonDecode(w, &body))

	var customer models.Customer
	assert.NoError(t, json.Unmarshal(body["customer"], &customer))
	assert.Equal(t, "sawy", customer.Name)

	var book models.Book
	assert.NoError(t, json.Unmarshal(body["book"], &book))
	assert.Equal(t, "1984", book.Title)
}

func TestCreateBorrowingReturnBeforeBorrow(t *testing.T) {
	router := setupTest(t)
	mustCreateAuthor(t, "george orwell")
	mustCreateBook(t, "1984", 1)
	mustCreateCustomer(t, "sawy", "sawy@example.com")

	w := performRequest(router, "POST", "/api/v1/borrowings",
		`{"customerID":1,"bookID":1,"borrowDate":"2024-01-24","returnDate":"2024-01-10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Return date must be after borrow date")
}

func TestSearchBorrowingsByUser(t *testing.T) {
	router := setupTest(t)
	mustCreateAuthor(t, "george orwell")
	mustCreateBook(t, "1984", 1)
	first := mustCreateCustomer(t, "sawy", "sawy@example.com")
	second := mustCreateCustomer(t, "jane", "jane@example.com")
	for _, id := range []uint{first.ID, first.ID, second.ID} {
		record := models.BorrowingRecord{CustomerID: id, BookID: 1}
		assert.NoError(t, services.Borrowings.Create(&record))
	}

	w := performRequest(router, "GET", "/api/v1/borrowings/search?userId=1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Content       []models.BorrowingRecord `json:"content"`
		TotalElements int64                    `json:"totalElements"`
	}
	assert.NoError(t, jsonDecode(w, &page))
	assert.Equal(t, int64(2), page.TotalElements)
	for _, rec := range page.Content {
		assert.Equal(t, uint(1), rec.CustomerID)
	}
}

func TestSearchBorrowingsByBook(t *testing.T) {
	router := setupTest(t)
	mustCreateAuthor(t, "george orwell")
	mustCreateBook(t, "1984", 1)
	mustCreateBook(t, "Animal Farm", 1)
	customer := mustCreateCustomer(t, "sawy", "sawy@example.com")
	for _, id := range []uint{1, 2} {
		record := models.BorrowingRecord{CustomerID: customer.ID, BookID: id}
		assert.NoError(t, services.Borrowings.Create(&record))
	}

	w := performRequest(router, "GET", "/api/v1/borrowings/search?bookId=2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Content []models.BorrowingRecord `json:"content"`
	}
	assert.NoError(t, jsonDecode(w, &page))
	assert.Len(t, page.Content, 1)
	assert.Equal(t, uint(2), page.Content[0].BookID)
}

func TestSearchBorrowingsParamRules(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, "GET", "/api/v1/borrowings/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, "GET", "/api/v1/borrowings/search?userId=1&bookId=1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, "GET", "/api/v1/borrowings/search?userId=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid userId")
}

func TestDeleteBookKeepsBorrowings(t *testing.T) {
	router := setupTest(t)
	mustCreateAuthor(t, "george orwell")
	book := mustCreateBook(t, "1984", 1)
	customer := mustCreateCustomer(t, "sawy", "sawy@example.com")
	record := models.BorrowingRecord{CustomerID: customer.ID, BookID: book.ID}
	assert.NoError(t, services.Borrowings.Create(&record))

	w := performRequest(router, "DELETE", "/api/v1/books/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	assert.NoError(t, testDB.Model(&models.BorrowingRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
