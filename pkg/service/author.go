package service

import (
	"gorm.io/gorm"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
)

// AuthorService owns authors and, transitively, their books.
type AuthorService struct {
	*base[models.Author]
}

func newAuthorService(db *gorm.DB, store *cache.Store) *AuthorService {
	s := &AuthorService{base: &base[models.Author]{
		db:    db,
		cache: store,
		name:  "authors",
		sortable: map[string]string{
			"id":          "authors.id",
			"name":        "authors.name",
			"birthDate":   "authors.birth_date",
			"nationality": "authors.nationality",
		},
		preloads: []string{"Books"},
	}}
	s.flatten = flattenAuthor
	s.apply = func(dst, src *models.Author) {
		dst.Name = src.Name
		dst.BirthDate = src.BirthDate
		dst.Nationality = src.Nationality
	}
	s.cascade = func(tx *gorm.DB, id uint) error {
		return tx.Where("author_id = ?", id).Delete(&models.Book{}).Error
	}
	return s
}

// flattenAuthor trims the embedded books so they don't re-serialize their
// author or their borrowing records.
func flattenAuthor(a *models.Author) {
	for i := range a.Books {
		b := &a.Books[i]
		if b.Author != nil {
			b.AuthorID = b.Author.ID
		}
		b.Author = nil
		b.BorrowingRecords = nil
	}
}
