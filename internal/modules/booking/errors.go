package booking

import "errors"

var (
	ErrInvalidDateRange = errors.New("check-in must be before check-out")
	ErrNotAvailable     = errors.New("property not available for the requested dates")
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotFound         = errors.New("booking not found")
	ErrInvalidStatus    = errors.New("unknown booking status")
	ErrStorage          = errors.New("record not persisted")
)
