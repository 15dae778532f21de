package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware provides the session-backed request gates.
type Middleware struct {
	sessionManager *SessionManager
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(sessionManager *SessionManager) *Middleware {
	return &Middleware{sessionManager: sessionManager}
}

// RequireAuth redirects unauthenticated requests to the login page.
// An optional flash is queued so the visitor knows why they were bounced.
func (m *Middleware) RequireAuth(flashMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessionManager.IsAuthenticated(c.Request) {
			if flashMessage != "" {
				m.sessionManager.AddFlash(c.Request, FlashDanger, flashMessage)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects requests without the admin flag to redirectPath.
// The redirect target varies per route, so it is a parameter rather than a
// constant.
func (m *Middleware) RequireAdmin(redirectPath, flashMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessionManager.IsAdmin(c.Request) {
			if flashMessage != "" {
				m.sessionManager.AddFlash(c.Request, FlashDanger, flashMessage)
			}
			c.Redirect(http.StatusFound, redirectPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
