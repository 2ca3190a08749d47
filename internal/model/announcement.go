package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a platform update shown to all users. Mutations are
// gated by the shared write secret, not per-user auth.
type Announcement struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content    string             `bson:"content" json:"content"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	ExpiryDate *time.Time         `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	Seen       bool               `bson:"seen" json:"seen"`
	Cleared    bool               `bson:"cleared" json:"cleared"`
}

// Expired reports whether the announcement's expiry date has passed.
func (a Announcement) Expired(now time.Time) bool {
	return a.ExpiryDate != nil && a.ExpiryDate.Before(now)
}
