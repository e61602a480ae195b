package domain

import "time"

type UserRole string

const (
	RoleGuest UserRole = "GUEST"
	RoleHost  UserRole = "HOST"
	RoleAdmin UserRole = "ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username" validate:"required,min=3"`
	Email            string    `json:"email" validate:"required,email"`
	PasswordHash     string    `json:"-"`
	Role             UserRole  `json:"role"`
	RegistrationDate time.Time `json:"registration_date"`
}
