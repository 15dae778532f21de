package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboard_RequiresLogin(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	w := get(env, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboard_ListsCatalog(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	seedBook(t, env, "Dune", "Frank Herbert", "111", "Science Fiction", 3)
	seedBook(t, env, "Neuromancer", "William Gibson", "222", "Science Fiction", 2)

	cookie := signupAndLogin(t, env, "alice", "secret")

	w := get(env, "/dashboard", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
	assert.Contains(t, w.Body.String(), "Neuromancer")
	assert.Contains(t, w.Body.String(), "Available copies: 5")
}

func TestDashboard_SearchFiltersCatalog(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	seedBook(t, env, "Dune", "Frank Herbert", "111", "Science Fiction", 3)
	seedBook(t, env, "Emma", "Jane Austen", "222", "Romance", 2)

	cookie := signupAndLogin(t, env, "alice", "secret")

	w := get(env, "/dashboard?search_by=author&query=austen", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Emma")
	assert.NotContains(t, w.Body.String(), "Dune")
	// The availability total reflects the filtered set.
	assert.Contains(t, w.Body.String(), "Available copies: 2")
}

func TestDashboard_SearchUnknownFieldShowsNothing(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	seedBook(t, env, "Dune", "Frank Herbert", "111", "Science Fiction", 3)

	cookie := signupAndLogin(t, env, "alice", "secret")

	w := get(env, "/dashboard?search_by=count&query=3", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Dune")
}

func TestDashboard_BorrowedBooksScopedToUser(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	seedBook(t, env, "Dune", "Frank Herbert", "111", "Science Fiction", 3)
	seedBook(t, env, "Emma", "Jane Austen", "222", "Romance", 2)

	alice := signupAndLogin(t, env, "alice", "secret")
	bob := signupAndLogin(t, env, "bob", "secret")

	w := get(env, "/borrow/111", alice)
	assert.Equal(t, http.StatusFound, w.Code)
	w = get(env, "/borrow/222", bob)
	assert.Equal(t, http.StatusFound, w.Code)

	w = get(env, "/dashboard", alice)
	assert.Contains(t, w.Body.String(), "/return/111")
	assert.NotContains(t, w.Body.String(), "/return/222")
	// The borrowed total stays global.
	assert.Contains(t, w.Body.String(), "Borrowed books: 2")
}

func TestDashboard_AdminSeesAllBorrowedBooks(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	seedBook(t, env, "Dune", "Frank Herbert", "111", "Science Fiction", 3)

	alice := signupAndLogin(t, env, "alice", "secret")
	admin := signupAndLogin(t, env, "admin", "secret")

	w := get(env, "/borrow/111", alice)
	assert.Equal(t, http.StatusFound, w.Code)

	w = get(env, "/dashboard", admin)
	assert.Contains(t, w.Body.String(), "/return/111")
}
