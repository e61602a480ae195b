package message

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type MessageRepository interface {
	GetAll(ctx context.Context) []domain.Message
	GetByID(ctx context.Context, id string) *domain.Message
	Add(ctx context.Context, m *domain.Message) bool
	Update(ctx context.Context, m domain.Message) bool
}
