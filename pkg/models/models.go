package models

import (
	"time"
)

type Author struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	BirthDate   Date   `json:"birthDate"`
	Nationality string `gorm:"size:50;not null" json:"nationality"`

	Books []Book `gorm:"foreignKey:AuthorID" json:"books,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (a Author) EntityID() uint { return a.ID }

type Book struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"not null" json:"title"`
	Isbn            string `gorm:"not null" json:"isbn"`
	PublicationDate Date   `json:"publicationDate"`
	Genre           string `gorm:"not null" json:"genre"`
	Available       bool   `json:"available"`

	// AuthorID is the reference the client supplies; Author is the resolved
	// row when it exists. The two must agree after every write.
	AuthorID uint    `json:"authorID"`
	Author   *Author `gorm:"foreignKey:AuthorID" json:"author"`

	BorrowingRecords []BorrowingRecord `gorm:"foreignKey:BookID" json:"borrowingRecords,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (b Book) EntityID() uint { return b.ID }

type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	Address     string `gorm:"not null" json:"address"`
	PhoneNumber string `gorm:"size:11" json:"phoneNumber"`

	// Stored as a one-way hash, never serialized back to a client.
	Password string `gorm:"not null" json:"-"`

	BorrowingRecords []BorrowingRecord `gorm:"foreignKey:CustomerID" json:"borrowingRecords,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (c Customer) EntityID() uint { return c.ID }

type BorrowingRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint      `json:"customerID"`
	BookID     uint      `json:"bookID"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Book       *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`

	BorrowDate *Date `json:"borrowDate"`
	ReturnDate *Date `json:"returnDate"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (r BorrowingRecord) EntityID() uint { return r.ID }
