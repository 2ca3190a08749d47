package alert

import (
	"time"

	"mango-alerts-srv/internal/model"
)

// CreateInput is a new alert registration.
type CreateInput struct {
	MangoAccountPk string
	MangoGroupPk   string
	Health         float64
	AlertProvider  model.Provider
	Email          string
	PhoneNumber    string
	NotifiAlertID  string
}

// Summary is the projection returned when listing alerts for an
// account. Contact details are never included.
type Summary struct {
	ID                 string     `json:"_id"`
	Health             float64    `json:"health"`
	AlertProvider      model.Provider `json:"alertProvider"`
	Open               bool       `json:"open"`
	Timestamp          time.Time  `json:"timestamp"`
	TriggeredTimestamp *time.Time `json:"triggeredTimestamp,omitempty"`
}

// TriggerPolicy decides what Evaluate does with an alert after a
// successful dispatch.
type TriggerPolicy string

const (
	// PolicyClose keeps the record, flipping open to false and stamping
	// the trigger time.
	PolicyClose TriggerPolicy = "close"
	// PolicyDelete removes the record.
	PolicyDelete TriggerPolicy = "delete"
)
