package domain

import "time"

type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id" validate:"required"`
	UserID     string    `json:"user_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment,omitempty"`
	Date       time.Time `json:"date"`
}
