package message

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

// Send stores a new unread message stamped with the current time.
func (s *Service) Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	if senderID == "" || receiverID == "" || strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	m := domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
		Read:       false,
	}

	if !s.messages.Add(ctx, &m) {
		return nil, ErrStorage
	}
	return &m, nil
}

// Conversation returns all messages exchanged between two users in both
// directions, oldest first.
func (s *Service) Conversation(ctx context.Context, userA, userB string) []domain.Message {
	var out []domain.Message
	for _, m := range s.messages.GetAll(ctx) {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// ForUser returns every message the user sent or received, newest first.
func (s *Service) ForUser(ctx context.Context, userID string) []domain.Message {
	var out []domain.Message
	for _, m := range s.messages.GetAll(ctx) {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Unread returns the user's unread incoming messages, newest first.
func (s *Service) Unread(ctx context.Context, userID string) []domain.Message {
	var out []domain.Message
	for _, m := range s.messages.GetAll(ctx) {
		if m.ReceiverID == userID && !m.Read {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *Service) MarkRead(ctx context.Context, messageID string) error {
	m := s.messages.GetByID(ctx, messageID)
	if m == nil {
		return ErrNotFound
	}

	m.Read = true
	if !s.messages.Update(ctx, *m) {
		return ErrNotFound
	}
	return nil
}
