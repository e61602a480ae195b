package booking

import (
	"context"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type Service struct {
	bookings   BookingRepository
	properties PropertyRepository
}

func NewService(bookings BookingRepository, properties PropertyRepository) *Service {
	return &Service{bookings: bookings, properties: properties}
}

// IsAvailable reports whether the property exists and no pending or
// confirmed booking overlaps the requested half-open [checkIn, checkOut)
// range. Cancelled and completed bookings never block, and abutting stays
// are allowed.
func (s *Service) IsAvailable(ctx context.Context, propertyID string, checkIn, checkOut time.Time) bool {
	if s.properties.GetByID(ctx, propertyID) == nil {
		return false
	}

	for _, b := range s.bookings.GetByPropertyID(ctx, propertyID) {
		if !b.Status.Blocks() {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}

// Create books the property for the guest. The total price is derived at
// creation time from the property's nightly price and the whole-day length
// of the stay, and the booking is written directly in CONFIRMED status.
//
// The availability check and the append are one logical operation but are
// not isolated against writers in other processes; within this process the
// store's write lock is the only serialization.
func (s *Service) Create(ctx context.Context, propertyID, guestID string, checkIn, checkOut time.Time) (*domain.Booking, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	p := s.properties.GetByID(ctx, propertyID)
	if p == nil {
		return nil, ErrPropertyNotFound
	}

	if !s.IsAvailable(ctx, propertyID, checkIn, checkOut) {
		return nil, ErrNotAvailable
	}

	b := domain.Booking{
		PropertyID: propertyID,
		GuestID:    guestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     domain.BookingConfirmed,
	}
	b.TotalPrice = p.Price * float64(b.Nights())

	if !s.bookings.Add(ctx, &b) {
		return nil, ErrStorage
	}
	return &b, nil
}

// UpdateStatus overwrites the booking's status field. No transition rules
// apply; completing or cancelling a stay is an explicit caller decision.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	b := s.bookings.GetByID(ctx, id)
	if b == nil {
		return ErrNotFound
	}

	b.Status = status
	if !s.bookings.Update(ctx, *b) {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Update(ctx context.Context, b domain.Booking) error {
	if !s.bookings.Update(ctx, b) {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.bookings.Delete(ctx, id) {
		return ErrNotFound
	}
	return nil
}

func (s *Service) GetAll(ctx context.Context) []domain.Booking {
	return s.bookings.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) *domain.Booking {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) GetByGuestID(ctx context.Context, guestID string) []domain.Booking {
	return s.bookings.GetByGuestID(ctx, guestID)
}

func (s *Service) GetByPropertyID(ctx context.Context, propertyID string) []domain.Booking {
	return s.bookings.GetByPropertyID(ctx, propertyID)
}

// GetByHostID returns the bookings whose property is owned by the host.
func (s *Service) GetByHostID(ctx context.Context, hostID string) []domain.Booking {
	var out []domain.Booking
	for _, b := range s.bookings.GetAll(ctx) {
		p := s.properties.GetByID(ctx, b.PropertyID)
		if p != nil && p.OwnerID == hostID {
			out = append(out, b)
		}
	}
	return out
}
