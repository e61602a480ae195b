package property

import (
	"context"
	"strings"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/pkg/validator"
)

type Service struct {
	properties PropertyRepository
	reviews    ReviewRepository
	bookings   BookingRepository
}

func NewService(properties PropertyRepository, reviews ReviewRepository, bookings BookingRepository) *Service {
	return &Service{properties: properties, reviews: reviews, bookings: bookings}
}

// SearchFilter is a conjunction of optional predicates; a nil field
// matches everything.
type SearchFilter struct {
	Location  *string
	MaxPrice  *float64
	MinRating *float64
}

// Add validates and persists a new listing. The rating cache always starts
// at zero and the availability descriptor defaults to "all".
func (s *Service) Add(ctx context.Context, p domain.Property) (*domain.Property, error) {
	if errs := validator.Validate(p); errs != nil {
		return nil, ErrValidation
	}

	p.AverageRating = 0
	if p.AvailableDates == "" {
		p.AvailableDates = domain.AvailabilityAll
	}

	if !s.properties.Add(ctx, &p) {
		return nil, ErrStorage
	}
	return &p, nil
}

func (s *Service) Update(ctx context.Context, p domain.Property) error {
	if errs := validator.Validate(p); errs != nil {
		return ErrValidation
	}
	if !s.properties.Update(ctx, p) {
		return ErrNotFound
	}
	return nil
}

func (s *Service) GetAll(ctx context.Context) []domain.Property {
	return s.properties.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) *domain.Property {
	return s.properties.GetByID(ctx, id)
}

func (s *Service) GetByOwnerID(ctx context.Context, ownerID string) []domain.Property {
	return s.properties.GetByOwnerID(ctx, ownerID)
}

// Search filters listings by location substring (case-insensitive),
// inclusive maximum price and inclusive minimum rating.
func (s *Service) Search(ctx context.Context, filter SearchFilter) []domain.Property {
	var out []domain.Property
	for _, p := range s.properties.GetAll(ctx) {
		if filter.Location != nil && *filter.Location != "" &&
			!strings.Contains(strings.ToLower(p.Location), strings.ToLower(*filter.Location)) {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.MinRating != nil && p.AverageRating < *filter.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Delete removes a listing together with every review and booking that
// references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	for _, rv := range s.reviews.GetByPropertyID(ctx, id) {
		s.reviews.Delete(ctx, rv.ID)
	}
	for _, b := range s.bookings.GetByPropertyID(ctx, id) {
		s.bookings.Delete(ctx, b.ID)
	}

	if !s.properties.Delete(ctx, id) {
		return ErrNotFound
	}
	return nil
}

// RecalculateRating rewrites the property's cached average rating as the
// arithmetic mean of its current reviews, 0 when none remain. It runs
// eagerly on every review mutation; there is no staleness window.
func (s *Service) RecalculateRating(ctx context.Context, propertyID string) error {
	p := s.properties.GetByID(ctx, propertyID)
	if p == nil {
		return ErrNotFound
	}

	reviews := s.reviews.GetByPropertyID(ctx, propertyID)
	var avg float64
	if len(reviews) > 0 {
		var sum int
		for _, rv := range reviews {
			sum += rv.Rating
		}
		avg = float64(sum) / float64(len(reviews))
	}

	p.AverageRating = avg
	if !s.properties.Update(ctx, *p) {
		return ErrStorage
	}
	return nil
}
