package alert

import "errors"

var (
	ErrInvalidProvider = errors.New("invalid alert provider")
	ErrInvalidEmail    = errors.New("the entered email is incorrect")
	ErrInvalidPhone    = errors.New("the entered phone number is incorrect")
	ErrMissingContact  = errors.New("missing alert contact")
	ErrInvalidAccount  = errors.New("invalid margin account or mango group")
	ErrMissingAccount  = errors.New("missing margin account")
	ErrInvalidID       = errors.New("invalid alert id")
)
