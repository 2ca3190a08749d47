package announcement

import "time"

// CreateInput is a new announcement post.
type CreateInput struct {
	Content    string
	ExpiryDate *time.Time
}
