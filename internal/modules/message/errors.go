package message

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("message not found")
	ErrStorage    = errors.New("record not persisted")
)
