// Package borrows provides database operations for the borrow ledger.
package borrows

import (
	"errors"

	"gorm.io/gorm"

	"github.com/booklend/booklend/internal/entities"
)

// Repository handles all borrow ledger database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new borrow ledger repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a ledger entry. Nothing prevents the same user from
// accumulating several entries for the same ISBN.
func (r *Repository) Create(record *entities.BorrowRecord) error {
	return r.db.Create(record).Error
}

// Find returns the first ledger entry matching the ISBN and borrower.
func (r *Repository) Find(isbn, borrowedBy string) (*entities.BorrowRecord, error) {
	var record entities.BorrowRecord
	err := r.db.Where("isbn = ? AND borrowed_by = ?", isbn, borrowedBy).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes the first ledger entry matching the ISBN and borrower.
func (r *Repository) Delete(isbn, borrowedBy string) error {
	record, err := r.Find(isbn, borrowedBy)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.Delete(record).Error
}

// ListByUser returns all ledger entries for one borrower.
func (r *Repository) ListByUser(borrowedBy string) ([]entities.BorrowRecord, error) {
	var records []entities.BorrowRecord
	err := r.db.Where("borrowed_by = ?", borrowedBy).Find(&records).Error
	return records, err
}

// ListAll returns the entire ledger.
func (r *Repository) ListAll() ([]entities.BorrowRecord, error) {
	var records []entities.BorrowRecord
	err := r.db.Find(&records).Error
	return records, err
}

// CountAll returns the total number of ledger entries.
func (r *Repository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BorrowRecord{}).Count(&count).Error
	return count, err
}
