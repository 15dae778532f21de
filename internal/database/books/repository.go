// Package books provides database operations for the catalog.
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/booklend/booklend/internal/entities"
)

// ErrUnknownField is returned when a search names a field outside the catalog schema.
var ErrUnknownField = errors.New("unknown search field")

// searchableFields maps user-facing field names to catalog columns.
var searchableFields = map[string]string{
	"title":    "title",
	"author":   "author",
	"category": "category",
	"isbn":     "isbn",
}

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a catalog entry. ISBN duplicates are not rejected.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByISBN retrieves the first catalog entry with the given ISBN.
func (r *Repository) GetByISBN(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteByISBN removes the first catalog entry with the given ISBN.
// Deleting an absent ISBN is not an error.
func (r *Repository) DeleteByISBN(isbn string) error {
	var book entities.Book
	err := r.db.Where("isbn = ?", isbn).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.Delete(&book).Error
}

// All returns every catalog entry.
func (r *Repository) All() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// SearchByField returns entries whose named field contains the query,
// case-insensitively. The field must be one of title, author, category, isbn.
func (r *Repository) SearchByField(field, query string) ([]entities.Book, error) {
	column, ok := searchableFields[field]
	if !ok {
		return nil, ErrUnknownField
	}

	var books []entities.Book
	// sqlite LIKE is case-insensitive for ASCII
	err := r.db.Where(column+" LIKE ?", "%"+query+"%").Find(&books).Error
	return books, err
}

// SearchAny returns entries where title, author or category contains the
// query, case-insensitively.
func (r *Repository) SearchAny(query string) ([]entities.Book, error) {
	var books []entities.Book
	pattern := "%" + query + "%"
	err := r.db.
		Where("title LIKE ? OR author LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Find(&books).Error
	return books, err
}

// AdjustCount adds delta to the copy count of the first entry with the given
// ISBN. The read and write are separate statements; callers get no stronger
// guarantee than two independent single-row operations.
func (r *Repository) AdjustCount(isbn string, delta int) error {
	var book entities.Book
	if err := r.db.Where("isbn = ?", isbn).First(&book).Error; err != nil {
		return err
	}
	return r.db.Model(&book).
		UpdateColumn("count", gorm.Expr("count + ?", delta)).Error
}
