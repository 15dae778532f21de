package http

import (
	"github.com/booklend/booklend/internal/auth"
	"github.com/booklend/booklend/internal/database/books"
	"github.com/booklend/booklend/internal/database/borrows"
	"github.com/booklend/booklend/internal/database/reviews"
	"github.com/booklend/booklend/internal/lending"
)

// RouterConfig carries all dependencies for NewRouter, improving
// testability and reducing parameter count.
type RouterConfig struct {
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	Lending        *lending.Service
	Books          *books.Repository
	Borrows        *borrows.Repository
	Reviews        *reviews.Repository

	TemplatesPath string
	StaticPath    string
	CSRFSecret    []byte
	SecureCookies bool
	Version       string
}
