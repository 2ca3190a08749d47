package twilio

import "context"

// Client sends SMS and validates phone numbers through the Twilio REST
// API.
//
//go:generate mockery --name Client
type Client interface {
	// SendSMS submits one outbound message.
	SendSMS(ctx context.Context, to, body string) error

	// LookupNumber validates a phone number and returns its E.164 form.
	LookupNumber(ctx context.Context, number string) (string, error)
}
