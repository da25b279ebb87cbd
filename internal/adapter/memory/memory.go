// Package memory implements the default in-memory store. It is the
// reference backing for the chat room: everything lives for the process
// lifetime and is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"chatroom/internal/domain"
)

// Store holds all chat-room state behind a single mutex. The lock covers
// the whole check-then-append sequence in user creation, which is the only
// concurrency hazard in the design.
type Store struct {
	mu       sync.Mutex
	users    []domain.User
	sessions map[string]domain.Session
	messages []domain.Message

	messageIDCounter int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		sessions: make(map[string]domain.Session),
	}
}

// Users returns the store's user repository view.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Sessions returns the store's session repository view.
func (s *Store) Sessions() *SessionRepo { return &SessionRepo{s: s} }

// Messages returns the store's message repository view.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{s: s} }

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.MessageRepository = (*MessageRepo)(nil)

// UserRepo implements domain.UserRepository on a Store.
type UserRepo struct {
	s *Store
}

// Create appends a new user unless the nickname is already present.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].Nickname == user.Nickname {
			return nil, domain.ErrNicknameTaken
		}
	}

	r.s.users = append(r.s.users, *user)
	stored := r.s.users[len(r.s.users)-1]
	return &stored, nil
}

// GetByNickname retrieves a user by exact nickname, or nil.
func (r *UserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].Nickname == nickname {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// List returns all users in registration order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}

// SessionRepo implements domain.SessionRepository on a Store.
type SessionRepo struct {
	s *Store
}

// Create stores a session keyed by its token.
func (r *SessionRepo) Create(ctx context.Context, session *domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[session.Token] = *session
	return nil
}

// GetByToken retrieves a session by token. Expired sessions are removed
// and reported as absent.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(session.ExpiresAt) {
		delete(r.s.sessions, token)
		return nil, nil
	}
	return &session, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	for token, session := range r.s.sessions {
		if now.After(session.ExpiresAt) {
			delete(r.s.sessions, token)
		}
	}
	return nil
}

// MessageRepo implements domain.MessageRepository on a Store.
type MessageRepo struct {
	s *Store
}

// Append stores a message at the end of the board and assigns its ID.
func (r *MessageRepo) Append(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.messageIDCounter++
	stored := *message
	stored.ID = r.s.messageIDCounter
	r.s.messages = append(r.s.messages, stored)
	return &stored, nil
}

// List returns all messages in insertion order.
func (r *MessageRepo) List(ctx context.Context) ([]domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Message, len(r.s.messages))
	copy(out, r.s.messages)
	return out, nil
}
