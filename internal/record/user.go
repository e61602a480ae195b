package record

import (
	"strings"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

// EncodeUser renders a user as
// id|username|email|passwordHash|role|registrationDate.
func EncodeUser(u domain.User) string {
	return strings.Join([]string{
		u.ID,
		sanitize(u.Username),
		sanitize(u.Email),
		u.PasswordHash,
		string(u.Role),
		formatDate(u.RegistrationDate),
	}, Delimiter)
}

// DecodeUser parses a user line. A missing or malformed registration date
// defaults to today.
func DecodeUser(line string) (domain.User, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 5 {
		return domain.User{}, false
	}

	u := domain.User{
		ID:           parts[0],
		Username:     parts[1],
		Email:        parts[2],
		PasswordHash: parts[3],
		Role:         domain.UserRole(parts[4]),
	}

	if len(parts) > 5 && parts[5] != "" {
		u.RegistrationDate = parseDateOr(parts[5], time.Now())
	} else {
		u.RegistrationDate = time.Now()
	}

	return u, true
}
