package http

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
)

// AccountController handles signup, login and logout.
type AccountController struct {
	service  *auth.Service
	sessions *auth.SessionManager
}

// NewAccountController creates a new account controller.
func NewAccountController(service *auth.Service, sessions *auth.SessionManager) *AccountController {
	return &AccountController{service: service, sessions: sessions}
}

// SignupPage renders the signup form.
func (ac *AccountController) SignupPage(c *gin.Context) {
	render(c, ac.sessions, "signup.html", nil)
}

// Signup creates a new account and sends the visitor to the login page.
func (ac *AccountController) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := ac.service.Signup(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			redirectWithFlash(c, ac.sessions, "/signup", auth.FlashDanger, "Username already exists!")
			return
		}
		log.Printf("signup failed for %q: %v", username, err)
		redirectWithFlash(c, ac.sessions, "/signup", auth.FlashDanger, "Could not create the account. Please try again.")
		return
	}

	redirectWithFlash(c, ac.sessions, "/login", auth.FlashSuccess, "Signup successful! Please login.")
}

// LoginPage renders the login form.
func (ac *AccountController) LoginPage(c *gin.Context) {
	render(c, ac.sessions, "login.html", nil)
}

// Login checks credentials and establishes a session.
func (ac *AccountController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ac.service.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("login failed for %q: %v", username, err)
		}
		// Re-render the form rather than redirect, as the original UI does
		ac.sessions.AddFlash(c.Request, auth.FlashDanger, "Invalid username or password")
		render(c, ac.sessions, "login.html", nil)
		return
	}

	if err := ac.sessions.CreateSession(c.Request, user); err != nil {
		log.Printf("failed to create session for %q: %v", username, err)
		ac.sessions.AddFlash(c.Request, auth.FlashDanger, "Could not establish a session. Please try again.")
		render(c, ac.sessions, "login.html", nil)
		return
	}

	redirectWithFlash(c, ac.sessions, "/dashboard", auth.FlashSuccess, "Login successful!")
}

// Logout clears the identity unconditionally and redirects to login.
func (ac *AccountController) Logout(c *gin.Context) {
	ac.sessions.ClearIdentity(c.Request)
	redirectWithFlash(c, ac.sessions, "/login", auth.FlashInfo, "Logged out successfully!")
}
