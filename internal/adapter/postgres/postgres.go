// Package postgres implements the domain repositories using PostgreSQL.
// It is an optional alternative to the in-memory store, selected when a
// DATABASE_URL is configured; durability beyond that is not a goal.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chatroom/internal/domain"

	"github.com/lib/pq"
)

// DB wraps a *sql.DB and hands out the domain repository views.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, nickname TEXT UNIQUE NOT NULL, name TEXT NOT NULL, email TEXT NOT NULL DEFAULT '', birth_date DATE NOT NULL, password TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, nickname TEXT NOT NULL REFERENCES users(nickname), last_access TIMESTAMPTZ NOT NULL, expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
		"CREATE TABLE IF NOT EXISTS messages (id BIGSERIAL PRIMARY KEY, nickname TEXT NOT NULL, text TEXT NOT NULL, posted_at TIMESTAMPTZ NOT NULL);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// uniqueViolation is the Postgres error code for a UNIQUE constraint hit.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}

// Users returns the user repository view.
func (d *DB) Users() *UserRepo { return &UserRepo{db: d} }

// Sessions returns the session repository view.
func (d *DB) Sessions() *SessionRepo { return &SessionRepo{db: d} }

// Messages returns the message repository view.
func (d *DB) Messages() *MessageRepo { return &MessageRepo{db: d} }

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.MessageRepository = (*MessageRepo)(nil)
