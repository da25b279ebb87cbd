package app

import (
	"context"
	"errors"
	"time"

	"chatroom/internal/domain"

	"github.com/google/uuid"
)

// ErrUnauthenticated indicates that a request carried no valid session.
var ErrUnauthenticated = errors.New("not authenticated")

// sessionTTL is the fixed inactivity window after which a login expires.
const sessionTTL = 30 * time.Minute

// SessionService maps transport tokens to an authenticated-or-not decision
// and the associated user identity. A session record exists only while
// authenticated; logout and expiry both remove it entirely.
type SessionService struct {
	sessions domain.SessionRepository
}

// NewSessionService creates a SessionService backed by the given repository.
func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Login mints a fresh session for the nickname and stores it. LastAccess
// is captured now and surfaced back to the client on the next page view.
func (s *SessionService) Login(ctx context.Context, nickname string) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		Token:      uuid.NewString(),
		Nickname:   nickname,
		LastAccess: now,
		ExpiresAt:  now.Add(sessionTTL),
		CreatedAt:  now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate resolves a token to its session. Unknown tokens fail with
// ErrUnauthenticated; expired sessions are deleted and fail the same way,
// so a later request with the same token starts from scratch.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrUnauthenticated
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrUnauthenticated
	}
	return session, nil
}

// IsAuthenticated reports whether the token resolves to a live session.
func (s *SessionService) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := s.Validate(ctx, token)
	return err == nil
}

// Logout destroys the session outright. Any later access with the same
// token is anonymous.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
