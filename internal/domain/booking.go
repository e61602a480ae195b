package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Blocks reports whether a booking in this status occupies its date range
// for availability purposes. Cancelled and completed stays never block.
func (s BookingStatus) Blocks() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"property_id" validate:"required"`
	GuestID    string        `json:"guest_id" validate:"required"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
}

// Nights returns the whole-day length of the stay.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Overlaps reports whether the booking's [CheckIn, CheckOut) range
// intersects the given half-open range. Abutting ranges do not overlap,
// so back-to-back stays are allowed.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !(!checkOut.After(b.CheckIn) || !checkIn.Before(b.CheckOut))
}
