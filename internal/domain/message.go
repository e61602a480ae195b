package domain

import "time"

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id" validate:"required"`
	ReceiverID string    `json:"receiver_id" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}
