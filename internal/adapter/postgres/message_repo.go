package postgres

import (
	"context"

	"chatroom/internal/domain"
)

// MessageRepo implements domain.MessageRepository on a DB.
type MessageRepo struct {
	db *DB
}

// Append inserts a message and returns it with its assigned ID.
func (r *MessageRepo) Append(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	stored := *message
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO messages (nickname, text, posted_at) VALUES ($1, $2, $3) RETURNING id",
		message.Nickname, message.Text, message.PostedAt,
	).Scan(&stored.ID)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// List returns all messages in insertion order.
func (r *MessageRepo) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, nickname, text, posted_at FROM messages ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Nickname, &m.Text, &m.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
