// Package reviews provides database operations for the visitor review log.
package reviews

import (
	"gorm.io/gorm"

	"github.com/booklend/booklend/internal/entities"
)

// Repository handles the append-only review log.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a review. No validation is applied to any field.
func (r *Repository) Create(review *entities.Review) error {
	return r.db.Create(review).Error
}

// ListAll returns every submitted review.
func (r *Repository) ListAll() ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Find(&reviews).Error
	return reviews, err
}
