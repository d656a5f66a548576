package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
)

// BookService resolves each book's author reference through the author
// service, so single-author lookups ride that service's cache.
type BookService struct {
	*base[models.Book]
	authors *AuthorService
}

func newBookService(db *gorm.DB, store *cache.Store, authors *AuthorService) *BookService {
	s := &BookService{
		authors: authors,
		base: &base[models.Book]{
			db:    db,
			cache: store,
			name:  "books",
			sortable: map[string]string{
				"id":              "books.id",
				"title":           "books.title",
				"isbn":            "books.isbn",
				"publicationDate": "books.publication_date",
				"genre":           "books.genre",
				"available":       "books.available",
				"authorID":        "books.author_id",
			},
			preloads: []string{"Author", "BorrowingRecords"},
		},
	}
	s.attach = s.attachAuthor
	s.flatten = flattenBook
	s.apply = func(dst, src *models.Book) {
		dst.Title = src.Title
		dst.Isbn = src.Isbn
		dst.PublicationDate = src.PublicationDate
		dst.Genre = src.Genre
		dst.Available = src.Available
		dst.AuthorID = src.AuthorID
	}
	return s
}

// attachAuthor looks up the referenced author. An unknown author id is not an
// error: the book keeps the dangling id and a null author.
func (s *BookService) attachAuthor(b *models.Book) error {
	author, err := s.authors.GetByID(b.AuthorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			b.Author = nil
			return nil
		}
		return err
	}
	// Copy before trimming so the cached author stays intact.
	a := *author
	a.Books = nil
	b.Author = &a
	return nil
}

// flattenBook syncs the FK scalars from the resolved objects and cuts the
// Book -> BorrowingRecord -> Book cycle: embedded records expose customerID
// and bookID only.
func flattenBook(b *models.Book) {
	if b.Author != nil {
		b.AuthorID = b.Author.ID
		b.Author.Books = nil
	}
	for i := range b.BorrowingRecords {
		r := &b.BorrowingRecords[i]
		if r.Customer != nil {
			r.CustomerID = r.Customer.ID
		}
		if r.Book != nil {
			r.BookID = r.Book.ID
		}
		r.Customer = nil
		r.Book = nil
	}
}

// SearchByTitle pages over books whose title contains the term,
// case-insensitively.
func (s *BookService) SearchByTitle(title string, p pagination.Params) (*pagination.Page[models.Book], error) {
	key := cache.Key("books.search.title", title, p.Page, p.Size, p.SortBy, p.SortOrder)
	term := "%" + strings.ToLower(title) + "%"
	return s.page(key, p, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(books.title) LIKE ?", term)
	})
}

// SearchByAuthor pages over books whose author's name contains the term,
// case-insensitively.
func (s *BookService) SearchByAuthor(author string, p pagination.Params) (*pagination.Page[models.Book], error) {
	key := cache.Key("books.search.author", author, p.Page, p.Size, p.SortBy, p.SortOrder)
	term := "%" + strings.ToLower(author) + "%"
	return s.page(key, p, func(tx *gorm.DB) *gorm.DB {
		return tx.
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("LOWER(authors.name) LIKE ?", term)
	})
}

// SearchByIsbn pages over books whose ISBN contains the term,
// case-insensitively.
func (s *BookService) SearchByIsbn(isbn string, p pagination.Params) (*pagination.Page[models.Book], error) {
	key := cache.Key("books.search.isbn", isbn, p.Page, p.Size, p.SortBy, p.SortOrder)
	term := "%" + strings.ToLower(isbn) + "%"
	return s.page(key, p, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(books.isbn) LIKE ?", term)
	})
}
