package app

import (
	"context"
	"time"

	"chatroom/internal/domain"
)

// BoardService owns the shared message board: an append-only, unbounded
// list of messages in insertion order.
type BoardService struct {
	messages domain.MessageRepository
}

// NewBoardService creates a BoardService backed by the given repository.
func NewBoardService(messages domain.MessageRepository) *BoardService {
	return &BoardService{messages: messages}
}

// Post validates and appends a message with the capture time. Only
// presence is checked; author existence is the caller's concern.
func (s *BoardService) Post(ctx context.Context, nickname, text string) (*domain.Message, error) {
	if nickname == "" {
		return nil, missingField("user")
	}
	if text == "" {
		return nil, missingField("message")
	}
	message := &domain.Message{
		Nickname: nickname,
		Text:     text,
		PostedAt: time.Now(),
	}
	return s.messages.Append(ctx, message)
}

// List returns every message posted so far, in insertion order.
func (s *BoardService) List(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}
