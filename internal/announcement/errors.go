package announcement

import "errors"

var (
	ErrInvalidSecret  = errors.New("invalid update password")
	ErrInvalidID      = errors.New("invalid update id")
	ErrMissingContent = errors.New("missing update content")
)
