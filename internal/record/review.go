package record

import (
	"strconv"
	"strings"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

const reviewFields = 6

// EncodeReview renders a review as
// id|propertyId|userId|rating|comment|date.
func EncodeReview(r domain.Review) string {
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}
	return strings.Join([]string{
		r.ID,
		r.PropertyID,
		r.UserID,
		strconv.Itoa(r.Rating),
		sanitize(r.Comment),
		date.Format(dateLayout),
	}, Delimiter)
}

// DecodeReview parses a review line. The comment is the only free-text
// field, so the split is bounded at the full field count. A malformed
// rating falls back to 5 and a malformed date to today.
func DecodeReview(line string) (domain.Review, bool) {
	parts := strings.SplitN(line, Delimiter, reviewFields)
	if len(parts) < reviewFields {
		return domain.Review{}, false
	}

	return domain.Review{
		ID:         parts[0],
		PropertyID: parts[1],
		UserID:     parts[2],
		Rating:     parseIntOr(parts[3], 5),
		Comment:    parts[4],
		Date:       parseDateOr(parts[5], time.Now()),
	}, true
}
