package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/record"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

type BookingRepository struct {
	store *storage.Store
}

func NewBookingRepository(store *storage.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) GetAll(ctx context.Context) []domain.Booking {
	lines := r.store.ReadAll(storage.BookingsFile)
	bookings := make([]domain.Booking, 0, len(lines))
	for _, line := range lines {
		if b, ok := record.DecodeBooking(line); ok {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) *domain.Booking {
	for _, b := range r.GetAll(ctx) {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

func (r *BookingRepository) GetByGuestID(ctx context.Context, guestID string) []domain.Booking {
	var out []domain.Booking
	for _, b := range r.GetAll(ctx) {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepository) GetByPropertyID(ctx context.Context, propertyID string) []domain.Booking {
	var out []domain.Booking
	for _, b := range r.GetAll(ctx) {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepository) Add(ctx context.Context, b *domain.Booking) bool {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.store.Append(storage.BookingsFile, record.EncodeBooking(*b))
}

func (r *BookingRepository) Update(ctx context.Context, b domain.Booking) bool {
	return r.store.UpdateByKey(storage.BookingsFile, b.ID, record.EncodeBooking(b))
}

func (r *BookingRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(storage.BookingsFile, id)
}
