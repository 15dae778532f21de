package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
)

// render executes an HTML template, attaching the pending flashes and the
// current identity so every page can show them.
func render(c *gin.Context, sm *auth.SessionManager, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = sm.PopFlashes(c.Request)
	data["Username"] = sm.GetUsername(c.Request)
	data["IsAdmin"] = sm.IsAdmin(c.Request)
	data["CSRFToken"] = auth.GetCSRFToken(c)
	data["Version"] = c.GetString("app_version")
	c.HTML(http.StatusOK, name, data)
}

// redirectWithFlash queues a one-shot notice and redirects.
func redirectWithFlash(c *gin.Context, sm *auth.SessionManager, location, category, message string) {
	sm.AddFlash(c.Request, category, message)
	c.Redirect(http.StatusFound, location)
}

// parseCount reads a copy count form value. Absent or unparseable input
// falls back to 1 instead of failing the request.
func parseCount(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
