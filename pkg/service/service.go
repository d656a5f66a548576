// Package service implements the catalog's entity services. One generic base
// carries the shared discipline (validated pagination, read-through caching
// with invalidate-on-write, foreign-key resolution); each entity service is
// the base plus a small amount of declarative configuration and hooks.
package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/validator"
)

// ErrNotFound reports an absent id. Absence is an ordinary outcome for get
// and update; the API layer turns it into a 404.
var ErrNotFound = errors.New("record not found")

// ValidationErrors maps failing field names to messages.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e))
}

// Hasher is the one-way password hash collaborator.
type Hasher func(plaintext string) (string, error)

// BcryptHasher is the production Hasher.
func BcryptHasher(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

type entity interface {
	EntityID() uint
	Validate(v *validator.Validator)
}

// base is the uniform entity service. Hooks left nil are skipped.
type base[T entity] struct {
	db    *gorm.DB
	cache *cache.Store

	// name prefixes every cache key for this entity type.
	name string
	// sortable maps exposed sort-field names to qualified columns.
	sortable map[string]string
	// preloads are the relations loaded on every read.
	preloads []string

	// attach resolves FK-ID fields into their referenced entities on writes.
	attach func(*T) error
	// flatten copies resolved IDs back onto FK scalars and breaks cycles
	// before an entity leaves the service.
	flatten func(*T)
	// beforeSave mutates the entity right before persistence (password hash).
	beforeSave func(*T) error
	// apply overwrites the mutable fields of dst from src on update.
	apply func(dst, src *T)
	// cascade deletes owned children inside the delete transaction.
	cascade func(tx *gorm.DB, id uint) error
}

// List returns one page of the full collection.
func (s *base[T]) List(p pagination.Params) (*pagination.Page[T], error) {
	key := cache.Key(s.name+".list", p.Page, p.Size, p.SortBy, p.SortOrder)
	return s.page(key, p, nil)
}

// page is the shared read path for List and the entity-specific searches.
func (s *base[T]) page(key string, p pagination.Params, scope func(*gorm.DB) *gorm.DB) (*pagination.Page[T], error) {
	q, err := pagination.Resolve(p, s.sortable)
	if err != nil {
		return nil, err
	}

	if v, ok := s.cache.Get(key); ok {
		if pg, ok := v.(*pagination.Page[T]); ok {
			return pg, nil
		}
	}

	scoped := func() *gorm.DB {
		tx := s.db.Model(new(T))
		if scope != nil {
			tx = scope(tx)
		}
		return tx
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, err
	}

	tx := scoped()
	for _, pre := range s.preloads {
		tx = tx.Preload(pre)
	}
	items := []T{}
	if err := tx.Order(q.OrderClause()).Offset(q.Offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	if s.flatten != nil {
		for i := range items {
			s.flatten(&items[i])
		}
	}

	pg := pagination.NewPage(items, p, total)
	s.cache.Put(key, pg)
	return pg, nil
}

// GetByID returns the entity or ErrNotFound.
func (s *base[T]) GetByID(id uint) (*T, error) {
	key := cache.Key(s.name+".byID", id)
	if v, ok := s.cache.Get(key); ok {
		if e, ok := v.(*T); ok {
			return e, nil
		}
	}

	tx := s.db
	for _, pre := range s.preloads {
		tx = tx.Preload(pre)
	}
	var e T
	if err := tx.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if s.flatten != nil {
		s.flatten(&e)
	}
	s.cache.Put(key, &e)
	return &e, nil
}

// Create validates, resolves references, persists and returns the entity
// with its generated id set. List and search pages for the type are evicted.
func (s *base[T]) Create(e *T) error {
	v := validator.New()
	(*e).Validate(v)
	if !v.Valid() {
		return ValidationErrors(v.Errors)
	}
	if s.beforeSave != nil {
		if err := s.beforeSave(e); err != nil {
			return err
		}
	}
	if s.attach != nil {
		if err := s.attach(e); err != nil {
			return err
		}
	}
	if err := s.db.Omit(clause.Associations).Create(e).Error; err != nil {
		return err
	}
	if s.flatten != nil {
		s.flatten(e)
	}
	s.invalidatePages()
	return nil
}

// Update overwrites the mutable fields of the stored entity with details.
// The id never changes; a missing id is ErrNotFound, not an upsert.
func (s *base[T]) Update(id uint, details *T) (*T, error) {
	v := validator.New()
	(*details).Validate(v)
	if !v.Valid() {
		return nil, ValidationErrors(v.Errors)
	}

	var cur T
	if err := s.db.First(&cur, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.apply != nil {
		s.apply(&cur, details)
	}
	if s.beforeSave != nil {
		if err := s.beforeSave(&cur); err != nil {
			return nil, err
		}
	}
	if s.attach != nil {
		if err := s.attach(&cur); err != nil {
			return nil, err
		}
	}
	if err := s.db.Omit(clause.Associations).Save(&cur).Error; err != nil {
		return nil, err
	}
	if s.flatten != nil {
		s.flatten(&cur)
	}

	s.invalidatePages()
	s.cache.Put(cache.Key(s.name+".byID", id), &cur)
	return &cur, nil
}

// Delete removes the entity and its cascaded children. Deleting a missing id
// is a no-op, not an error.
func (s *base[T]) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if s.cascade != nil {
			if err := s.cascade(tx, id); err != nil {
				return err
			}
		}
		return tx.Delete(new(T), id).Error
	})
	if err != nil {
		return err
	}
	s.invalidatePages()
	s.cache.Delete(cache.Key(s.name+".byID", id))
	return nil
}

func (s *base[T]) invalidatePages() {
	s.cache.Invalidate(s.name + ".list")
	s.cache.Invalidate(s.name + ".search")
}

// Services bundles the per-entity services over one store and cache.
type Services struct {
	Authors    *AuthorService
	Books      *BookService
	Customers  *CustomerService
	Borrowings *BorrowingService
}

// New wires the entity services. store may be nil to run without caching;
// hash is applied to customer passwords before persistence.
func New(db *gorm.DB, store *cache.Store, hash Hasher) *Services {
	authors := newAuthorService(db, store)
	books := newBookService(db, store, authors)
	customers := newCustomerService(db, store, hash)
	borrowings := newBorrowingService(db, store, customers, books)
	return &Services{
		Authors:    authors,
		Books:      books,
		Customers:  customers,
		Borrowings: borrowings,
	}
}
