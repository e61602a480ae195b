package booking

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type BookingRepository interface {
	GetAll(ctx context.Context) []domain.Booking
	GetByID(ctx context.Context, id string) *domain.Booking
	GetByGuestID(ctx context.Context, guestID string) []domain.Booking
	GetByPropertyID(ctx context.Context, propertyID string) []domain.Booking
	Add(ctx context.Context, b *domain.Booking) bool
	Update(ctx context.Context, b domain.Booking) bool
	Delete(ctx context.Context, id string) bool
}

// PropertyRepository supplies the nightly price, existence checks and the
// owner lookup behind the host-side booking queries.
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) *domain.Property
}
