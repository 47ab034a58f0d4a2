package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/naturalsuds/soapshop/internal/model"
	"github.com/naturalsuds/soapshop/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameReserved   = errors.New("username reserved")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// reservedUsername can never be registered; it belongs to the built-in
// admin credential, which lives outside the user store.
const reservedUsername = "admin"

// CredentialChecker matches a credential pair against the admin account.
// The default is a static plaintext pair for fidelity with the original
// deployment; a hardened variant (hashed, config-driven) can substitute
// without touching the login flow.
type CredentialChecker interface {
	Check(username, password string) bool
}

type staticCredential struct {
	username string
	password string
}

func NewStaticCredential(username, password string) CredentialChecker {
	return staticCredential{username: username, password: password}
}

func (c staticCredential) Check(username, password string) bool {
	return username == c.username && password == c.password
}

type AuthService struct {
	users repository.UserRepository
	admin CredentialChecker
}

func NewAuthService(users repository.UserRepository, admin CredentialChecker) *AuthService {
	return &AuthService{users: users, admin: admin}
}

// Login resolves a credential pair to an actor. The admin credential is
// checked first, then the user store is scanned; failures collapse into one
// generic error so callers cannot distinguish unknown users from wrong
// passwords.
func (s *AuthService) Login(username, password string) (model.Actor, error) {
	if s.admin.Check(username, password) {
		return model.Actor{Username: username, Role: model.RoleAdmin}, nil
	}
	for _, u := range s.users.Load() {
		if u.Username == username && u.Password == password {
			return model.Actor{Username: username, Role: model.RoleUser}, nil
		}
	}
	return model.Actor{}, ErrInvalidCredentials
}

// Register validates and appends a new user. Password confirmation and the
// reserved-name check run before the store is consulted.
func (s *AuthService) Register(username, email, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if username == reservedUsername {
		return ErrUsernameReserved
	}
	existing := s.users.Load()
	for _, u := range existing {
		if u.Username == username {
			return ErrUsernameTaken
		}
	}
	for _, u := range existing {
		if u.Email == email {
			return ErrEmailTaken
		}
	}
	user := model.User{
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
	if err := s.users.Append(user); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}
