package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"chatroom/internal/domain"
)

// SessionRepo implements domain.SessionRepository on a DB.
type SessionRepo struct {
	db *DB
}

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (token, nickname, last_access, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)",
		session.Token, session.Nickname, session.LastAccess, session.ExpiresAt, session.CreatedAt,
	)
	return err
}

// GetByToken retrieves a session by token, or nil.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, nickname, last_access, expires_at, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.Nickname, &s.LastAccess, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < $1", time.Now())
	return err
}
