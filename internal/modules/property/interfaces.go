package property

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type PropertyRepository interface {
	GetAll(ctx context.Context) []domain.Property
	GetByID(ctx context.Context, id string) *domain.Property
	GetByOwnerID(ctx context.Context, ownerID string) []domain.Property
	Add(ctx context.Context, p *domain.Property) bool
	Update(ctx context.Context, p domain.Property) bool
	Delete(ctx context.Context, id string) bool
}

// ReviewRepository is consumed for the rating recomputation and the
// review side of the delete cascade.
type ReviewRepository interface {
	GetByPropertyID(ctx context.Context, propertyID string) []domain.Review
	Delete(ctx context.Context, id string) bool
}

// BookingRepository is consumed for the booking side of the delete cascade.
type BookingRepository interface {
	GetByPropertyID(ctx context.Context, propertyID string) []domain.Booking
	Delete(ctx context.Context, id string) bool
}
