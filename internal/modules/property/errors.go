package property

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("property not found")
	ErrStorage    = errors.New("record not persisted")
)
