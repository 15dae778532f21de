package http

import (
	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
)

// UIController serves the public landing page.
type UIController struct {
	sessions *auth.SessionManager
}

// NewUIController creates a new UI controller.
func NewUIController(sessions *auth.SessionManager) *UIController {
	return &UIController{sessions: sessions}
}

// Home renders the landing page.
func (uc *UIController) Home(c *gin.Context) {
	render(c, uc.sessions, "index.html", nil)
}
