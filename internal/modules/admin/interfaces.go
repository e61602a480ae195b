package admin

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type UserRepository interface {
	GetAll(ctx context.Context) []domain.User
	GetByID(ctx context.Context, id string) *domain.User
	Delete(ctx context.Context, id string) bool
}

type PropertyRepository interface {
	GetAll(ctx context.Context) []domain.Property
	GetByOwnerID(ctx context.Context, ownerID string) []domain.Property
}

type BookingRepository interface {
	GetAll(ctx context.Context) []domain.Booking
	GetByGuestID(ctx context.Context, guestID string) []domain.Booking
	Delete(ctx context.Context, id string) bool
}

// PropertyDeleter performs the listing delete cascade (reviews and
// bookings included) on behalf of the user delete cascade.
type PropertyDeleter interface {
	Delete(ctx context.Context, id string) error
}
