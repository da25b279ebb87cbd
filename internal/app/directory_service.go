// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"regexp"
	"time"
	"unicode/utf8"

	"chatroom/internal/domain"
)

// ErrInvalidCredentials indicates that the provided nickname or password was incorrect.
var ErrInvalidCredentials = errors.New("invalid nickname or password")

var (
	nameRe  = regexp.MustCompile(`^\p{L}+(?: \p{L}+)*$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const (
	nicknameMinLen  = 3
	nicknameMaxLen  = 20
	passwordMinLen  = 6
	birthDateLayout = "2006-01-02"
)

// RegistrationForm carries the raw fields of a registration request as
// submitted, before any validation.
type RegistrationForm struct {
	Name      string
	Email     string // optional
	BirthDate string
	Nickname  string
	Password  string
}

// DirectoryService owns the registered-user directory: registration with
// its validation and uniqueness rules, credential checks, and listing.
type DirectoryService struct {
	users domain.UserRepository
}

// NewDirectoryService creates a DirectoryService backed by the given repository.
func NewDirectoryService(users domain.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// Register validates the form and stores the new user. Checks run in a
// fixed order and the first violation wins: required fields, name charset,
// email shape (when present), birth date, nickname length, password
// length, then nickname uniqueness. Field failures are *ValidationError;
// a duplicate nickname is domain.ErrNicknameTaken.
func (s *DirectoryService) Register(ctx context.Context, form RegistrationForm) (*domain.User, error) {
	switch {
	case form.Name == "":
		return nil, missingField("name")
	case form.BirthDate == "":
		return nil, missingField("birthDate")
	case form.Nickname == "":
		return nil, missingField("nickname")
	case form.Password == "":
		return nil, missingField("password")
	}

	if !nameRe.MatchString(form.Name) {
		return nil, formatError("name", "name must contain only letters and spaces")
	}
	if form.Email != "" && !emailRe.MatchString(form.Email) {
		return nil, formatError("email", "email must look like local@domain.tld")
	}

	birthDate, err := time.Parse(birthDateLayout, form.BirthDate)
	if err != nil {
		return nil, formatError("birthDate", "birth date must be a valid YYYY-MM-DD date")
	}
	if birthDate.After(time.Now()) {
		return nil, formatError("birthDate", "birth date cannot be in the future")
	}

	if n := utf8.RuneCountInString(form.Nickname); n < nicknameMinLen || n > nicknameMaxLen {
		return nil, rangeError("nickname", "nickname must be 3 to 20 characters")
	}
	if utf8.RuneCountInString(form.Password) < passwordMinLen {
		return nil, rangeError("password", "password must be at least 6 characters")
	}

	user := &domain.User{
		Name:      form.Name,
		Email:     form.Email,
		BirthDate: birthDate,
		Nickname:  form.Nickname,
		Password:  form.Password,
		CreatedAt: time.Now(),
	}
	return s.users.Create(ctx, user)
}

// Authenticate returns the user with that exact nickname and password, or
// ErrInvalidCredentials. There is no lockout and no rate limiting.
func (s *DirectoryService) Authenticate(ctx context.Context, nickname, password string) (*domain.User, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Exists reports whether a user with that exact nickname is registered.
func (s *DirectoryService) Exists(ctx context.Context, nickname string) (bool, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// List returns all registered users in registration order.
func (s *DirectoryService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
