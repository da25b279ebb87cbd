package postgres

import (
	"context"
	"database/sql"
	"errors"

	"chatroom/internal/domain"
)

// UserRepo implements domain.UserRepository on a DB.
type UserRepo struct {
	db *DB
}

// Create inserts a new user. The nickname UNIQUE constraint enforces the
// check-then-append atomically; a violation maps to domain.ErrNicknameTaken.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO users (nickname, name, email, birth_date, password, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		user.Nickname, user.Name, user.Email, user.BirthDate, user.Password, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrNicknameTaken
		}
		return nil, err
	}
	return user, nil
}

// GetByNickname retrieves a user by exact nickname, or nil.
func (r *UserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	var u domain.User
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT nickname, name, email, birth_date, password, created_at FROM users WHERE nickname = $1",
		nickname,
	).Scan(&u.Nickname, &u.Name, &u.Email, &u.BirthDate, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users in registration order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT nickname, name, email, birth_date, password, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Nickname, &u.Name, &u.Email, &u.BirthDate, &u.Password, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
