// Package entities defines the persisted records for the library service.
package entities

import (
	"time"
)

// User is a registered account. Usernames are unique; the admin flag is
// decided once at signup and never changes afterwards.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"uniqueIndex;size:100" json:"username"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Book is a catalog entry. ISBN is the natural key used for lookup, delete,
// borrow and return, but uniqueness is not enforced at creation.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Author    string    `gorm:"index;size:256" json:"author"`
	ISBN      string    `gorm:"index;size:20" json:"isbn"`
	Category  string    `gorm:"index;size:100" json:"category"`
	Count     int       `gorm:"default:0" json:"count"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BorrowRecord is a ledger entry created on borrow and deleted on return.
// The book title is denormalized so the dashboard can list records without
// a catalog lookup.
type BorrowRecord struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	ISBN       string    `gorm:"index;size:20" json:"isbn"`
	Title      string    `gorm:"size:512" json:"title"`
	BorrowedBy string    `gorm:"index;size:100" json:"borrowed_by"`
	BorrowedAt time.Time `json:"borrowed_at"`
}

// TableName keeps the historical collection name.
func (BorrowRecord) TableName() string {
	return "borrowed_books"
}

// Review is an append-only visitor message, readable only by admins.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"size:256" json:"name"`
	Email     string    `gorm:"size:256" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
