package review

import (
	"context"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/pkg/validator"
)

type Service struct {
	reviews    ReviewRepository
	properties PropertyFinder
	ratings    RatingUpdater
}

func NewService(reviews ReviewRepository, properties PropertyFinder, ratings RatingUpdater) *Service {
	return &Service{reviews: reviews, properties: properties, ratings: ratings}
}

// Add persists a review and eagerly recomputes the property's rating cache.
func (s *Service) Add(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	if errs := validator.Validate(rv); errs != nil {
		return nil, ErrValidation
	}
	if s.properties.GetByID(ctx, rv.PropertyID) == nil {
		return nil, ErrPropertyNotFound
	}

	if rv.Date.IsZero() {
		rv.Date = time.Now()
	}

	if !s.reviews.Add(ctx, &rv) {
		return nil, ErrStorage
	}

	if err := s.ratings.RecalculateRating(ctx, rv.PropertyID); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (s *Service) Update(ctx context.Context, rv domain.Review) error {
	if errs := validator.Validate(rv); errs != nil {
		return ErrValidation
	}
	if !s.reviews.Update(ctx, rv) {
		return ErrNotFound
	}
	return s.ratings.RecalculateRating(ctx, rv.PropertyID)
}

// Delete removes the review and recomputes the owning property's rating.
// The property id is read before deletion since only the stored record
// knows which listing the rating cache belongs to.
func (s *Service) Delete(ctx context.Context, id string) error {
	rv := s.reviews.GetByID(ctx, id)
	if rv == nil {
		return ErrNotFound
	}

	if !s.reviews.Delete(ctx, id) {
		return ErrNotFound
	}
	return s.ratings.RecalculateRating(ctx, rv.PropertyID)
}

func (s *Service) GetAll(ctx context.Context) []domain.Review {
	return s.reviews.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) *domain.Review {
	return s.reviews.GetByID(ctx, id)
}

func (s *Service) GetByPropertyID(ctx context.Context, propertyID string) []domain.Review {
	return s.reviews.GetByPropertyID(ctx, propertyID)
}

func (s *Service) GetByUserID(ctx context.Context, userID string) []domain.Review {
	return s.reviews.GetByUserID(ctx, userID)
}
