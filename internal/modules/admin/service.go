// Package admin provides the platform-wide aggregates behind the admin
// dashboard and the user delete cascade.
package admin

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type Service struct {
	users           UserRepository
	properties      PropertyRepository
	bookings        BookingRepository
	propertyCascade PropertyDeleter
}

// Stats is a point-in-time snapshot of the platform, recomputed from the
// stored collections on every call.
type Stats struct {
	TotalUsers            int
	UsersByRole           map[domain.UserRole]int
	TotalProperties       int
	TotalBookings         int
	ActiveBookings        int
	TotalRevenue          float64
	AveragePropertyRating float64
}

func NewService(users UserRepository, properties PropertyRepository, bookings BookingRepository, propertyCascade PropertyDeleter) *Service {
	return &Service{
		users:           users,
		properties:      properties,
		bookings:        bookings,
		propertyCascade: propertyCascade,
	}
}

func (s *Service) Stats(ctx context.Context) Stats {
	stats := Stats{UsersByRole: make(map[domain.UserRole]int)}

	users := s.users.GetAll(ctx)
	stats.TotalUsers = len(users)
	for _, u := range users {
		stats.UsersByRole[u.Role]++
	}

	properties := s.properties.GetAll(ctx)
	stats.TotalProperties = len(properties)
	if len(properties) > 0 {
		var sum float64
		for _, p := range properties {
			sum += p.AverageRating
		}
		stats.AveragePropertyRating = sum / float64(len(properties))
	}

	bookings := s.bookings.GetAll(ctx)
	stats.TotalBookings = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingConfirmed:
			stats.ActiveBookings++
		case domain.BookingCompleted:
			stats.TotalRevenue += b.TotalPrice
		}
	}

	return stats
}

// DeleteUser removes a user and everything hanging off them: each owned
// listing (cascading to that listing's reviews and bookings) and every
// booking the user placed as a guest.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if s.users.GetByID(ctx, userID) == nil {
		return ErrUserNotFound
	}

	for _, p := range s.properties.GetByOwnerID(ctx, userID) {
		if err := s.propertyCascade.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	for _, b := range s.bookings.GetByGuestID(ctx, userID) {
		s.bookings.Delete(ctx, b.ID)
	}

	if !s.users.Delete(ctx, userID) {
		return ErrUserNotFound
	}
	return nil
}

func (s *Service) GetAllUsers(ctx context.Context) []domain.User {
	return s.users.GetAll(ctx)
}

func (s *Service) GetAllProperties(ctx context.Context) []domain.Property {
	return s.properties.GetAll(ctx)
}

func (s *Service) GetAllBookings(ctx context.Context) []domain.Booking {
	return s.bookings.GetAll(ctx)
}
