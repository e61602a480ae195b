package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/record"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

type MessageRepository struct {
	store *storage.Store
}

func NewMessageRepository(store *storage.Store) *MessageRepository {
	return &MessageRepository{store: store}
}

func (r *MessageRepository) GetAll(ctx context.Context) []domain.Message {
	lines := r.store.ReadAll(storage.MessagesFile)
	messages := make([]domain.Message, 0, len(lines))
	for _, line := range lines {
		if m, ok := record.DecodeMessage(line); ok {
			messages = append(messages, m)
		}
	}
	return messages
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) *domain.Message {
	for _, m := range r.GetAll(ctx) {
		if m.ID == id {
			return &m
		}
	}
	return nil
}

func (r *MessageRepository) Add(ctx context.Context, m *domain.Message) bool {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.store.Append(storage.MessagesFile, record.EncodeMessage(*m))
}

func (r *MessageRepository) Update(ctx context.Context, m domain.Message) bool {
	return r.store.UpdateByKey(storage.MessagesFile, m.ID, record.EncodeMessage(m))
}

func (r *MessageRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(storage.MessagesFile, id)
}
