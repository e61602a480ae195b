package host

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type PropertyRepository interface {
	GetByID(ctx context.Context, id string) *domain.Property
	GetByOwnerID(ctx context.Context, ownerID string) []domain.Property
}

type BookingRepository interface {
	GetAll(ctx context.Context) []domain.Booking
}

type ReviewRepository interface {
	GetAll(ctx context.Context) []domain.Review
}
