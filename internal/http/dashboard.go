package http

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
	"github.com/booklend/booklend/internal/database/books"
	"github.com/booklend/booklend/internal/database/borrows"
	"github.com/booklend/booklend/internal/entities"
)

// DashboardController renders the catalog plus the borrow view.
type DashboardController struct {
	books    *books.Repository
	borrows  *borrows.Repository
	sessions *auth.SessionManager
}

// NewDashboardController creates a new dashboard controller.
func NewDashboardController(b *books.Repository, br *borrows.Repository, sessions *auth.SessionManager) *DashboardController {
	return &DashboardController{books: b, borrows: br, sessions: sessions}
}

// Dashboard shows the (optionally filtered) catalog, the visitor's borrow
// records (all records for admins) and two aggregates: copies available in
// the shown set, and the global size of the borrow ledger.
func (dc *DashboardController) Dashboard(c *gin.Context) {
	searchBy := c.Query("search_by")
	query := strings.TrimSpace(c.Query("query"))

	var catalog []entities.Book
	var err error
	if query != "" {
		catalog, err = dc.books.SearchByField(searchBy, query)
		if errors.Is(err, books.ErrUnknownField) {
			// An unknown field matches nothing, same as querying an
			// absent document key
			catalog, err = nil, nil
		}
	} else {
		catalog, err = dc.books.All()
	}
	if err != nil {
		log.Printf("dashboard catalog query failed: %v", err)
	}

	username := dc.sessions.GetUsername(c.Request)
	isAdmin := dc.sessions.IsAdmin(c.Request)

	var borrowed []entities.BorrowRecord
	if isAdmin {
		borrowed, err = dc.borrows.ListAll()
	} else {
		borrowed, err = dc.borrows.ListByUser(username)
	}
	if err != nil {
		log.Printf("dashboard ledger query failed: %v", err)
	}

	totalAvailable := 0
	for _, book := range catalog {
		totalAvailable += book.Count
	}

	// The borrowed total is the whole ledger, not scoped to the visitor
	totalBorrowed, err := dc.borrows.CountAll()
	if err != nil {
		log.Printf("dashboard ledger count failed: %v", err)
	}

	render(c, dc.sessions, "dashboard.html", gin.H{
		"Books":               catalog,
		"BorrowedBooks":       borrowed,
		"TotalAvailableBooks": totalAvailable,
		"TotalBorrowedBooks":  totalBorrowed,
		"SearchBy":            searchBy,
		"Query":               query,
	})
}
