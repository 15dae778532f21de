package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
	"github.com/booklend/booklend/internal/database/books"
	"github.com/booklend/booklend/internal/entities"
)

// CatalogController handles the admin catalog mutations and the public
// search API.
type CatalogController struct {
	books    *books.Repository
	sessions *auth.SessionManager
}

// NewCatalogController creates a new catalog controller.
func NewCatalogController(b *books.Repository, sessions *auth.SessionManager) *CatalogController {
	return &CatalogController{books: b, sessions: sessions}
}

// SearchBooks is the public JSON endpoint. A blank query yields an empty
// list; otherwise title, author and category are matched case-insensitively.
func (cc *CatalogController) SearchBooks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, []entities.Book{})
		return
	}

	found, err := cc.books.SearchAny(query)
	if err != nil {
		log.Printf("book search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	if found == nil {
		found = []entities.Book{}
	}

	c.JSON(http.StatusOK, found)
}

// AddBookPage renders the add-book form.
func (cc *CatalogController) AddBookPage(c *gin.Context) {
	render(c, cc.sessions, "add_book.html", nil)
}

// AddBook inserts a catalog entry unconditionally; there is no
// duplicate-ISBN check. A missing or malformed count falls back to 1.
func (cc *CatalogController) AddBook(c *gin.Context) {
	book := &entities.Book{
		Title:    c.PostForm("title"),
		Author:   c.PostForm("author"),
		ISBN:     c.PostForm("isbn"),
		Category: c.PostForm("category"),
		Count:    parseCount(c.PostForm("count")),
	}

	if err := cc.books.Create(book); err != nil {
		log.Printf("failed to add book %q: %v", book.Title, err)
		redirectWithFlash(c, cc.sessions, "/dashboard", auth.FlashDanger, "Could not add the book. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// DeleteBook removes the first entry with the given ISBN and reports
// success even when nothing matched.
func (cc *CatalogController) DeleteBook(c *gin.Context) {
	isbn := c.Param("isbn")

	if err := cc.books.DeleteByISBN(isbn); err != nil {
		log.Printf("failed to delete book %q: %v", isbn, err)
	}

	redirectWithFlash(c, cc.sessions, "/dashboard", auth.FlashSuccess, "Book deleted successfully!")
}
