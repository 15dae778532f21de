// Package lending moves copies between the catalog and the borrow ledger.
package lending

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/booklend/booklend/internal/entities"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrLastCopyProtected = errors.New("only one copy remains and cannot be borrowed")
	ErrNotBorrowedByUser = errors.New("book was not borrowed by this user")
)

// CatalogStore is the catalog access the service needs.
type CatalogStore interface {
	GetByISBN(isbn string) (*entities.Book, error)
	AdjustCount(isbn string, delta int) error
}

// LedgerStore is the borrow ledger access the service needs.
type LedgerStore interface {
	Create(record *entities.BorrowRecord) error
	Find(isbn, borrowedBy string) (*entities.BorrowRecord, error)
	Delete(isbn, borrowedBy string) error
}

// Service implements the borrow and return flows. Each flow is a read
// followed by two independent single-row writes; there is no transaction
// spanning the catalog and the ledger, so concurrent calls for the same
// ISBN can race exactly as two overlapping requests would.
type Service struct {
	catalog CatalogStore
	ledger  LedgerStore
	now     func() time.Time
}

// NewService creates a lending service.
func NewService(catalog CatalogStore, ledger LedgerStore) *Service {
	return &Service{
		catalog: catalog,
		ledger:  ledger,
		now:     time.Now,
	}
}

// Borrow hands a copy of the book to the user: the copy count drops by one
// and a ledger entry is created. The last remaining copy is never lent out.
func (s *Service) Borrow(isbn, username string) error {
	book, err := s.catalog.GetByISBN(isbn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("failed to look up book: %w", err)
	}

	if book.Count <= 1 {
		return ErrLastCopyProtected
	}

	if err := s.catalog.AdjustCount(isbn, -1); err != nil {
		return fmt.Errorf("failed to decrement copy count: %w", err)
	}

	record := &entities.BorrowRecord{
		ISBN:       isbn,
		Title:      book.Title,
		BorrowedBy: username,
		BorrowedAt: s.now(),
	}
	if err := s.ledger.Create(record); err != nil {
		return fmt.Errorf("failed to record borrow: %w", err)
	}

	return nil
}

// Return takes a copy back: the matching ledger entry is removed and the
// copy count rises by one. Without a matching entry nothing is mutated.
// A book deleted from the catalog while borrowed can still be returned;
// the increment is skipped and the ledger entry cleared.
func (s *Service) Return(isbn, username string) error {
	_, err := s.ledger.Find(isbn, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotBorrowedByUser
		}
		return fmt.Errorf("failed to look up borrow record: %w", err)
	}

	if err := s.catalog.AdjustCount(isbn, 1); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to increment copy count: %w", err)
	}

	if err := s.ledger.Delete(isbn, username); err != nil {
		return fmt.Errorf("failed to clear borrow record: %w", err)
	}

	return nil
}
