// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNicknameTaken indicates that a registration used a nickname that
// already belongs to another user.
var ErrNicknameTaken = errors.New("nickname already in use")

// User is a registered member of the chat room. Users are created by
// registration only and are never updated or deleted afterwards.
type User struct {
	Name      string
	Email     string // optional
	BirthDate time.Time
	Nickname  string
	Password  string // stored as entered; hashing is explicitly out of scope
	CreatedAt time.Time
}

// Session is a server-side record correlating a transport token with an
// authenticated user. A stored session is always authenticated; an
// anonymous visitor simply has no record.
type Session struct {
	Token      string
	Nickname   string
	LastAccess time.Time
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Message is one entry on the shared board. The Nickname identifies but
// does not own the author record.
type Message struct {
	ID       int64
	Nickname string
	Text     string
	PostedAt time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	// Create stores a new user, failing with ErrNicknameTaken if the
	// nickname is already present. The check and the append happen under
	// the store's own mutual exclusion.
	Create(ctx context.Context, user *User) (*User, error)
	// GetByNickname returns the user with that exact nickname, or nil.
	GetByNickname(ctx context.Context, nickname string) (*User, error)
	// List returns all users in registration order.
	List(ctx context.Context) ([]User, error)
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// MessageRepository defines the port for the append-only message board.
type MessageRepository interface {
	// Append stores a message and returns it with its assigned ID.
	Append(ctx context.Context, message *Message) (*Message, error)
	// List returns all messages in insertion order.
	List(ctx context.Context) ([]Message, error)
}
