package record

import (
	"strings"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

// EncodeProperty renders a listing as
// id|title|description|location|price|ownerId|averageRating|imagePath|availableDates.
func EncodeProperty(p domain.Property) string {
	available := p.AvailableDates
	if available == "" {
		available = domain.AvailabilityAll
	}
	return strings.Join([]string{
		p.ID,
		sanitize(p.Title),
		sanitize(p.Description),
		sanitize(p.Location),
		formatFloat(p.Price),
		p.OwnerID,
		formatFloat(p.AverageRating),
		sanitize(p.ImagePath),
		sanitize(available),
	}, Delimiter)
}

// DecodeProperty parses a listing line. The trailing rating, image path and
// availability fields are optional for lines written by older builds.
func DecodeProperty(line string) (domain.Property, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 6 {
		return domain.Property{}, false
	}

	p := domain.Property{
		ID:          parts[0],
		Title:       parts[1],
		Description: parts[2],
		Location:    parts[3],
		Price:       parseFloatOr(parts[4], 0),
		OwnerID:     parts[5],
	}

	if len(parts) > 6 && parts[6] != "" {
		p.AverageRating = parseFloatOr(parts[6], 0)
	}
	if len(parts) > 7 {
		p.ImagePath = parts[7]
	}
	if len(parts) > 8 {
		p.AvailableDates = parts[8]
	} else {
		p.AvailableDates = domain.AvailabilityAll
	}

	return p, true
}
