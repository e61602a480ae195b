package review

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type ReviewRepository interface {
	GetAll(ctx context.Context) []domain.Review
	GetByID(ctx context.Context, id string) *domain.Review
	GetByPropertyID(ctx context.Context, propertyID string) []domain.Review
	GetByUserID(ctx context.Context, userID string) []domain.Review
	Add(ctx context.Context, rv *domain.Review) bool
	Update(ctx context.Context, rv domain.Review) bool
	Delete(ctx context.Context, id string) bool
}

// PropertyFinder checks that a reviewed listing exists.
type PropertyFinder interface {
	GetByID(ctx context.Context, id string) *domain.Property
}

// RatingUpdater recomputes a property's cached average rating. The review
// service triggers it after every write or delete so the cache never
// drifts from the stored reviews.
type RatingUpdater interface {
	RecalculateRating(ctx context.Context, propertyID string) error
}
