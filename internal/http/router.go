// Package http assembles the web routes from the controllers.
package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.Use(cfg.SessionManager.SessionLoadSave())

	// Expose the build version to every rendered page
	router.Use(func(c *gin.Context) {
		c.Set("app_version", cfg.Version)
		c.Next()
	})

	// Load HTML templates
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	gate := auth.NewMiddleware(cfg.SessionManager)

	ui := NewUIController(cfg.SessionManager)
	account := NewAccountController(cfg.AuthService, cfg.SessionManager)
	dashboard := NewDashboardController(cfg.Books, cfg.Borrows, cfg.SessionManager)
	catalog := NewCatalogController(cfg.Books, cfg.SessionManager)
	lendingController := NewLendingController(cfg.Lending, cfg.SessionManager)
	reviewsController := NewReviewsController(cfg.Reviews, cfg.SessionManager)

	// Public pages
	router.GET("/", ui.Home)
	router.GET("/signup", account.SignupPage)
	router.POST("/signup", account.Signup)
	router.GET("/login", account.LoginPage)
	router.POST("/login", account.Login)
	router.GET("/logout", account.Logout)
	router.GET("/search_books", catalog.SearchBooks)
	router.GET("/leave_review", reviewsController.ReviewPage)
	router.POST("/leave_review", reviewsController.SubmitReview)

	// Authenticated pages
	router.GET("/dashboard", gate.RequireAuth(""), dashboard.Dashboard)
	router.GET("/borrow/:isbn", gate.RequireAuth("You need to log in to borrow a book."), lendingController.Borrow)
	router.GET("/return/:isbn", gate.RequireAuth(""), lendingController.Return)

	// Admin pages; redirect targets differ per route
	router.GET("/add_book", gate.RequireAdmin("/dashboard", ""), catalog.AddBookPage)
	router.POST("/add_book", gate.RequireAdmin("/dashboard", ""), catalog.AddBook)
	router.GET("/delete_book/:isbn", gate.RequireAdmin("/", "You must be an admin to delete books."), catalog.DeleteBook)
	router.GET("/admin/reviews", gate.RequireAdmin("/", ""), reviewsController.AdminReviews)

	return router
}
