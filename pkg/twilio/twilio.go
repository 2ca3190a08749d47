package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mango-alerts-srv/pkg/log"
)

const (
	messagesURL = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"
	lookupURL   = "https://lookups.twilio.com/v1/PhoneNumbers/%s"

	defaultTimeout = 15 * time.Second
)

// ErrInvalidNumber is returned when the lookup rejects a phone number.
var ErrInvalidNumber = fmt.Errorf("invalid phone number")

// Config holds the Twilio account credentials.
type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type restClient struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}

var _ Client = &restClient{}

// New creates a Twilio REST client.
func New(l log.Logger, cfg Config) Client {
	return &restClient{
		l:      l,
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *restClient) SendSMS(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf(messagesURL, c.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *restClient) LookupNumber(ctx context.Context, number string) (string, error) {
	endpoint := fmt.Sprintf(lookupURL, url.PathEscape(number))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrInvalidNumber
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("twilio lookup returned status %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.PhoneNumber, nil
}
