// Package auth handles accounts, sessions and request authorization.
package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/booklend/booklend/internal/config"
	"github.com/booklend/booklend/internal/entities"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// UserRepository defines the interface for account data access.
type UserRepository interface {
	Create(user *entities.User) error
	GetByUsername(username string) (*entities.User, error)
	Exists(username string) (bool, error)
}

// Service handles signup and credential checks.
type Service struct {
	users  UserRepository
	policy AuthorizationPolicy
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserRepository, policy AuthorizationPolicy, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		policy: policy,
		config: cfg,
	}
}

// Signup registers a new account. The username must not be taken (exact,
// case-sensitive match); the admin flag comes from the authorization policy.
func (s *Service) Signup(username, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	exists, err := s.users.Exists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      s.policy.IsAdminUsername(username),
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates credentials and returns the user. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}
