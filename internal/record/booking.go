package record

import (
	"strings"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

// EncodeBooking renders a booking as
// id|propertyId|guestId|checkIn|checkOut|totalPrice|status.
func EncodeBooking(b domain.Booking) string {
	return strings.Join([]string{
		b.ID,
		b.PropertyID,
		b.GuestID,
		formatDate(b.CheckIn),
		formatDate(b.CheckOut),
		formatFloat(b.TotalPrice),
		string(b.Status),
	}, Delimiter)
}

// DecodeBooking parses a booking line. Unparsable dates are left zero;
// the availability check treats such a booking as blocking nothing.
func DecodeBooking(line string) (domain.Booking, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 7 {
		return domain.Booking{}, false
	}

	b := domain.Booking{
		ID:         parts[0],
		PropertyID: parts[1],
		GuestID:    parts[2],
		TotalPrice: parseFloatOr(parts[5], 0),
		Status:     domain.BookingStatus(parts[6]),
	}

	if parts[3] != "" {
		b.CheckIn = parseDateOr(parts[3], b.CheckIn)
	}
	if parts[4] != "" {
		b.CheckOut = parseDateOr(parts[4], b.CheckOut)
	}

	return b, true
}
