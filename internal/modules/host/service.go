// Package host computes the host-dashboard views: a host's listings,
// the bookings and reviews against them, and earnings aggregates.
package host

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type Service struct {
	properties PropertyRepository
	bookings   BookingRepository
	reviews    ReviewRepository
}

func NewService(properties PropertyRepository, bookings BookingRepository, reviews ReviewRepository) *Service {
	return &Service{properties: properties, bookings: bookings, reviews: reviews}
}

func (s *Service) Properties(ctx context.Context, hostID string) []domain.Property {
	return s.properties.GetByOwnerID(ctx, hostID)
}

// Bookings returns every booking placed against one of the host's listings.
func (s *Service) Bookings(ctx context.Context, hostID string) []domain.Booking {
	var out []domain.Booking
	for _, b := range s.bookings.GetAll(ctx) {
		p := s.properties.GetByID(ctx, b.PropertyID)
		if p != nil && p.OwnerID == hostID {
			out = append(out, b)
		}
	}
	return out
}

// Reviews returns every review left on one of the host's listings.
func (s *Service) Reviews(ctx context.Context, hostID string) []domain.Review {
	owned := make(map[string]bool)
	for _, p := range s.properties.GetByOwnerID(ctx, hostID) {
		owned[p.ID] = true
	}

	var out []domain.Review
	for _, rv := range s.reviews.GetAll(ctx) {
		if owned[rv.PropertyID] {
			out = append(out, rv)
		}
	}
	return out
}

// TotalEarnings sums the prices of the host's completed bookings.
func (s *Service) TotalEarnings(ctx context.Context, hostID string) float64 {
	var sum float64
	for _, b := range s.Bookings(ctx, hostID) {
		if b.Status == domain.BookingCompleted {
			sum += b.TotalPrice
		}
	}
	return sum
}

// PendingEarnings sums the prices of the host's confirmed, not yet
// completed bookings.
func (s *Service) PendingEarnings(ctx context.Context, hostID string) float64 {
	var sum float64
	for _, b := range s.Bookings(ctx, hostID) {
		if b.Status == domain.BookingConfirmed {
			sum += b.TotalPrice
		}
	}
	return sum
}

func (s *Service) BookingCount(ctx context.Context, hostID string) int {
	return len(s.Bookings(ctx, hostID))
}

// AverageRating is the mean of the host's per-property rating caches,
// 0 when the host has no listings.
func (s *Service) AverageRating(ctx context.Context, hostID string) float64 {
	properties := s.properties.GetByOwnerID(ctx, hostID)
	if len(properties) == 0 {
		return 0
	}

	var sum float64
	for _, p := range properties {
		sum += p.AverageRating
	}
	return sum / float64(len(properties))
}
