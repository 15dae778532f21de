package http

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
	"github.com/booklend/booklend/internal/lending"
)

// LendingController handles the borrow and return flows.
type LendingController struct {
	lending  *lending.Service
	sessions *auth.SessionManager
}

// NewLendingController creates a new lending controller.
func NewLendingController(svc *lending.Service, sessions *auth.SessionManager) *LendingController {
	return &LendingController{lending: svc, sessions: sessions}
}

// Borrow hands a copy to the current user.
func (lc *LendingController) Borrow(c *gin.Context) {
	isbn := c.Param("isbn")
	username := lc.sessions.GetUsername(c.Request)

	err := lc.lending.Borrow(isbn, username)
	switch {
	case errors.Is(err, lending.ErrBookNotFound):
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashDanger, "Book not found!")
	case errors.Is(err, lending.ErrLastCopyProtected):
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashWarning,
			"This book cannot be borrowed as only one copy remains in the library.")
	case err != nil:
		log.Printf("borrow of %q by %q failed: %v", isbn, username, err)
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashDanger, "Could not borrow the book. Please try again.")
	default:
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashSuccess, "Book borrowed successfully!")
	}
}

// Return takes a copy back from the current user.
func (lc *LendingController) Return(c *gin.Context) {
	isbn := c.Param("isbn")
	username := lc.sessions.GetUsername(c.Request)

	err := lc.lending.Return(isbn, username)
	switch {
	case errors.Is(err, lending.ErrNotBorrowedByUser):
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashDanger, "You cannot return this book!")
	case err != nil:
		log.Printf("return of %q by %q failed: %v", isbn, username, err)
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashDanger, "Could not return the book. Please try again.")
	default:
		redirectWithFlash(c, lc.sessions, "/dashboard", auth.FlashSuccess, "Book returned successfully!")
	}
}
