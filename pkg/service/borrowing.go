package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
)

// BorrowingService resolves both sides of a record (customer and book)
// through their services.
type BorrowingService struct {
	*base[models.BorrowingRecord]
	customers *CustomerService
	books     *BookService
}

func newBorrowingService(db *gorm.DB, store *cache.Store, customers *CustomerService, books *BookService) *BorrowingService {
	s := &BorrowingService{
		customers: customers,
		books:     books,
		base: &base[models.BorrowingRecord]{
			db:    db,
			cache: store,
			name:  "borrowings",
			sortable: map[string]string{
				"id":         "borrowing_records.id",
				"customerID": "borrowing_records.customer_id",
				"bookID":     "borrowing_records.book_id",
				"borrowDate": "borrowing_records.borrow_date",
				"returnDate": "borrowing_records.return_date",
			},
			preloads: []string{"Customer", "Book"},
		},
	}
	s.attach = s.attachReferences
	s.flatten = flattenRecord
	s.apply = func(dst, src *models.BorrowingRecord) {
		dst.CustomerID = src.CustomerID
		dst.BookID = src.BookID
		dst.BorrowDate = src.BorrowDate
		dst.ReturnDate = src.ReturnDate
	}
	return s
}

// attachReferences resolves the customer and book ids. Either may be
// dangling, in which case the object side stays null.
func (s *BorrowingService) attachReferences(r *models.BorrowingRecord) error {
	customer, err := s.customers.GetByID(r.CustomerID)
	switch {
	case err == nil:
		c := *customer
		c.BorrowingRecords = nil
		r.Customer = &c
	case errors.Is(err, ErrNotFound):
		r.Customer = nil
	default:
		return err
	}

	book, err := s.books.GetByID(r.BookID)
	switch {
	case err == nil:
		b := *book
		b.BorrowingRecords = nil
		b.Author = nil
		r.Book = &b
	case errors.Is(err, ErrNotFound):
		r.Book = nil
	default:
		return err
	}
	return nil
}

// flattenRecord syncs FK scalars from the resolved objects and trims the
// objects' own collections so serialization stops one level down.
func flattenRecord(r *models.BorrowingRecord) {
	if r.Customer != nil {
		r.CustomerID = r.Customer.ID
		r.Customer.BorrowingRecords = nil
	}
	if r.Book != nil {
		r.BookID = r.Book.ID
		r.Book.BorrowingRecords = nil
		r.Book.Author = nil
	}
}

// ByCustomer pages over the records of one customer.
func (s *BorrowingService) ByCustomer(customerID uint, p pagination.Params) (*pagination.Page[models.BorrowingRecord], error) {
	key := cache.Key("borrowings.search.customer", customerID, p.Page, p.Size, p.SortBy, p.SortOrder)
	return s.page(key, p, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("borrowing_records.customer_id = ?", customerID)
	})
}

// ByBook pages over the records of one book.
func (s *BorrowingService) ByBook(bookID uint, p pagination.Params) (*pagination.Page[models.BorrowingRecord], error) {
	key := cache.Key("borrowings.search.book", bookID, p.Page, p.Size, p.SortBy, p.SortOrder)
	return s.page(key, p, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("borrowing_records.book_id = ?", bookID)
	})
}
