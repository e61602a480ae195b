package review

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotFound         = errors.New("review not found")
	ErrStorage          = errors.New("record not persisted")
)
