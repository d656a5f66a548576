package models

import (
	"strings"
	"time"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/validator"
)

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (a Author) Validate(v *validator.Validator) {
	v.Check(notBlank(a.Name), "name", "Name is mandatory")
	v.Check(len(a.Name) >= 2 && len(a.Name) <= 50, "name", "Name must be between 2 and 50 characters")
	v.Check(notBlank(a.Nationality), "nationality", "Nationality is mandatory")
	v.Check(len(a.Nationality) >= 4 && len(a.Nationality) <= 50, "nationality", "Nationality must be between 4 and 50 characters")
	if !a.BirthDate.IsZero() {
		v.Check(a.BirthDate.Before(time.Now()), "birthDate", "Birthdate must be a past date")
	}
}

func (b Book) Validate(v *validator.Validator) {
	v.Check(notBlank(b.Title), "title", "Title is mandatory")
	v.Check(notBlank(b.Isbn), "isbn", "ISBN is mandatory")
	v.Check(notBlank(b.Genre), "genre", "Genre is mandatory")
	v.Check(b.AuthorID != 0, "authorID", "Author ID is mandatory")
	if !b.PublicationDate.IsZero() {
		v.Check(!b.PublicationDate.After(Today().Time), "publicationDate", "Publication date cannot be in the future")
	}
}

func (c Customer) Validate(v *validator.Validator) {
	v.Check(notBlank(c.Name), "name", "Name is mandatory")
	v.Check(len(c.Name) >= 2 && len(c.Name) <= 50, "name", "Name must be between 2 and 50 characters")
	v.Check(notBlank(c.Email), "email", "Email is mandatory")
	v.Check(validator.Matches(c.Email, validator.EmailRX), "email", "Email should be valid")
	v.Check(notBlank(c.Address), "address", "Address is mandatory")
	v.Check(validator.Matches(c.PhoneNumber, validator.PhoneRX), "phoneNumber", "Phone number is invalid")
	v.Check(notBlank(c.Password), "password", "Password is mandatory")
}

func (r BorrowingRecord) Validate(v *validator.Validator) {
	v.Check(r.CustomerID != 0, "customerID", "Customer ID is mandatory")
	v.Check(r.BookID != 0, "bookID", "Book ID is mandatory")
	if r.BorrowDate != nil && r.ReturnDate != nil {
		v.Check(!r.ReturnDate.Before(r.BorrowDate.Time), "returnDate", "Return date must be after borrow date")
	}
}
