package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHome_RendersLandingPage(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	w := get(env, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Library")
}

func TestHome_ShowsBuildVersion(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	w := get(env, "/", nil)
	assert.Contains(t, w.Body.String(), "Booklend v0.0.0-test")
}
