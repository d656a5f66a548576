package service

import (
	"gorm.io/gorm"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
)

// CustomerService hashes passwords before persistence and owns the
// customer's borrowing records.
type CustomerService struct {
	*base[models.Customer]
	hash Hasher
}

func newCustomerService(db *gorm.DB, store *cache.Store, hash Hasher) *CustomerService {
	s := &CustomerService{
		hash: hash,
		base: &base[models.Customer]{
			db:    db,
			cache: store,
			name:  "customers",
			sortable: map[string]string{
				"id":          "customers.id",
				"name":        "customers.name",
				"email":       "customers.email",
				"address":     "customers.address",
				"phoneNumber": "customers.phone_number",
			},
			preloads: []string{"BorrowingRecords"},
		},
	}
	// Runs on create and update alike, so a password can never reach the
	// store in plaintext.
	s.beforeSave = func(c *models.Customer) error {
		hashed, err := s.hash(c.Password)
		if err != nil {
			return err
		}
		c.Password = hashed
		return nil
	}
	s.flatten = flattenCustomer
	s.apply = func(dst, src *models.Customer) {
		dst.Name = src.Name
		dst.Email = src.Email
		dst.Address = src.Address
		dst.PhoneNumber = src.PhoneNumber
		dst.Password = src.Password
	}
	s.cascade = func(tx *gorm.DB, id uint) error {
		return tx.Where("customer_id = ?", id).Delete(&models.BorrowingRecord{}).Error
	}
	return s
}

// flattenCustomer trims embedded borrowing records down to their FK ids.
func flattenCustomer(c *models.Customer) {
	for i := range c.BorrowingRecords {
		r := &c.BorrowingRecords[i]
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
