package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/validator"
)

func check(e interface{ Validate(*validator.Validator) }) map[string]string {
	v := validator.New()
	e.Validate(v)
	return v.Errors
}

func TestAuthorValidation(t *testing.T) {
	author := Author{Name: "george orwell", BirthDate: NewDate(1930, time.June, 25), Nationality: "British"}
	assert.Empty(t, check(author))

	assert.Contains(t, check(Author{Name: "x", Nationality: "British"}), "name")
	assert.Contains(t, check(Author{Name: "george", Nationality: "uk"}), "nationality")

	future := Author{Name: "george", Nationality: "British", BirthDate: Date{time.Now().AddDate(1, 0, 0)}}
	assert.Contains(t, check(future), "birthDate")
}

func TestBookValidation(t *testing.T) {
	book := Book{Title: "1984", Isbn: "978-0452284234", Genre: "political", AuthorID: 2}
	assert.Empty(t, check(book))

	errs := check(Book{})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "isbn")
	assert.Contains(t, errs, "genre")
	assert.Contains(t, errs, "authorID")

	tomorrow := time.Now().AddDate(0, 0, 1)
	future := book
	future.PublicationDate = NewDate(tomorrow.Year(), tomorrow.Month(), tomorrow.Day())
	assert.Contains(t, check(future), "publicationDate")

	today := book
	today.PublicationDate = Today()
	assert.Empty(t, check(today), "publication today is allowed")
}

func TestCustomerValidation(t *testing.T) {
	customer := Customer{
		Name: "sawy", Email: "sawy@example.com", Address: "123 Main St",
		PhoneNumber: "01234567893", Password: "password123",
	}
	assert.Empty(t, check(customer))

	bad := customer
	bad.Email = "not-an-email"
	assert.Contains(t, check(bad), "email")

	for _, phone := range []string{"", "0123456789", "012345678934", "01634567893", "abcdefghijk"} {
		bad = customer
		bad.PhoneNumber = phone
		assert.Contains(t, check(bad), "phoneNumber", "phone %q should be rejected", phone)
	}

	bad = customer
	bad.Password = ""
	assert.Contains(t, check(bad), "password")
}

func TestBorrowingRecordValidation(t *testing.T) {
	borrow := NewDate(2024, time.March, 1)
	sameDay := borrow
	earlier := NewDate(2024, time.February, 1)

	record := BorrowingRecord{CustomerID: 1, BookID: 2, BorrowDate: &borrow, ReturnDate: &sameDay}
	assert.Empty(t, check(record), "return on the borrow day is allowed")

	record.ReturnDate = &earlier
	assert.Contains(t, check(record), "returnDate")

	record.ReturnDate = nil
	assert.Empty(t, check(record), "open-ended borrow is allowed")

	assert.Contains(t, check(BorrowingRecord{BookID: 2}), "customerID")
	assert.Contains(t, check(BorrowingRecord{CustomerID: 1}), "bookID")
}
