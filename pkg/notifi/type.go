package notifi

// Config holds the push platform credentials. SID and secret are
// exchanged for a short-lived bearer token on demand.
type Config struct {
	SID     string
	Secret  string
	BaseURL string
}

// HealthEventInput is the content of one health-threshold event.
type HealthEventInput struct {
	AlertID       string
	AccountPk     string
	Threshold     float64
	CurrentHealth float64
	Message       string
}

type loginRequest struct {
	SID    string `json:"sid"`
	Secret string `json:"secret"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type healthEventPayload struct {
	Key           string  `json:"key"`
	AlertID       string  `json:"alertId"`
	AccountPk     string  `json:"accountPk"`
	EventType     string  `json:"eventType"`
	Threshold     float64 `json:"threshold"`
	CurrentHealth float64 `json:"currentHealth"`
	Message       string  `json:"message"`
}
