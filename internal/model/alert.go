package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Provider selects the notification backend for an alert.
type Provider string

const (
	ProviderMail Provider = "mail"
	ProviderSMS  Provider = "sms"
	ProviderPush Provider = "push"
)

// Alert is a health-ratio alert bound to a margin account.
// Exactly one contact field is populated, matching AlertProvider.
type Alert struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MangoAccountPk string             `bson:"mangoAccountPk" json:"mangoAccountPk"`
	MangoGroupPk   string             `bson:"mangoGroupPk" json:"mangoGroupPk"`

	// Health is the threshold in percent; the alert fires when the
	// observed ratio is at or below it.
	Health        float64  `bson:"health" json:"health"`
	AlertProvider Provider `bson:"alertProvider" json:"alertProvider"`

	Email         string `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber   string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	NotifiAlertID string `bson:"notifiAlertId,omitempty" json:"notifiAlertId,omitempty"`

	Open               bool       `bson:"open" json:"open"`
	Timestamp          time.Time  `bson:"timestamp" json:"timestamp"`
	TriggeredTimestamp *time.Time `bson:"triggeredTimestamp,omitempty" json:"triggeredTimestamp,omitempty"`
}
