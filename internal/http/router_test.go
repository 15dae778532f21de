package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/booklend/booklend/internal/auth"
	"github.com/booklend/booklend/internal/config"
	"github.com/booklend/booklend/internal/database/books"
	"github.com/booklend/booklend/internal/database/borrows"
	"github.com/booklend/booklend/internal/database/reviews"
	"github.com/booklend/booklend/internal/database/users"
	"github.com/booklend/booklend/internal/entities"
	"github.com/booklend/booklend/internal/lending"
)

// testEnv bundles the router with direct repository access for seeding
// and verification.
type testEnv struct {
	router  *gin.Engine
	users   *users.Repository
	books   *books.Repository
	borrows *borrows.Repository
	reviews *reviews.Repository
}

func setupTestRouter(t *testing.T) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Book{},
		&entities.BorrowRecord{},
		&entities.Review{},
	)
	require.NoError(t, err)

	usersRepo := users.NewRepository(db)
	booksRepo := books.NewRepository(db)
	borrowsRepo := borrows.NewRepository(db)
	reviewsRepo := reviews.NewRepository(db)

	authCfg := config.Auth{
		SessionLifetime: 24 * time.Hour,
		BcryptCost:      4, // keep tests fast
		SecureCookies:   false,
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)

	sessionManager, err := auth.NewSessionManager(sqlDB, authCfg)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		AuthService:    auth.NewService(usersRepo, auth.UsernamePolicy{}, authCfg),
		SessionManager: sessionManager,
		Lending:        lending.NewService(booksRepo, borrowsRepo),
		Books:          booksRepo,
		Borrows:        borrowsRepo,
		Reviews:        reviewsRepo,
		TemplatesPath:  "../../templates",
		Version:        "0.0.0-test",
	})

	env := &testEnv{
		router:  router,
		users:   usersRepo,
		books:   booksRepo,
		borrows: borrowsRepo,
		reviews: reviewsRepo,
	}

	cleanup := func() {
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return env, cleanup
}

// postForm submits a urlencoded form, optionally with a session cookie.
func postForm(env *testEnv, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	env.router.ServeHTTP(w, req)
	return w
}

// get performs a GET, optionally with a session cookie.
func get(env *testEnv, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	env.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	return nil
}

// signupAndLogin registers an account and returns its session cookie.
func signupAndLogin(t *testing.T, env *testEnv, username, password string) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	w := postForm(env, "/signup", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = postForm(env, "/login", form, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	return cookie
}

func seedBook(t *testing.T, env *testEnv, title, author, isbn, category string, count int) {
	t.Helper()
	require.NoError(t, env.books.Create(&entities.Book{
		Title: title, Author: author, ISBN: isbn, Category: category, Count: count,
	}))
}
