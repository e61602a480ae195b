package domain

// AvailabilityAll marks a listing as bookable on any date, subject to the
// overlap check against existing bookings.
const AvailabilityAll = "all"

type Property struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	OwnerID     string  `json:"owner_id" validate:"required"`
	// AverageRating is a persisted cache over the property's reviews.
	// It is rewritten by the review service on every review mutation and
	// must not be set by hand.
	AverageRating float64 `json:"average_rating"`
	ImagePath     string  `json:"image_path,omitempty"`
	// AvailableDates is a free-text availability descriptor,
	// e.g. "2024-01-01,2024-01-15" or AvailabilityAll.
	AvailableDates string `json:"available_dates,omitempty"`
}
