package notifi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"mango-alerts-srv/pkg/log"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	loginPath  = "/v1/login"
	eventsPath = "/v1/events"

	eventTypeHealthThreshold = "healthThreshold"

	defaultTimeout = 15 * time.Second

	// tokenSlack refreshes the cached token a little before it expires.
	tokenSlack = time.Minute
)

type client struct {
	l      log.Logger
	cfg    Config
	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

var _ Client = &client{}

// New creates a push platform client.
func New(l log.Logger, cfg Config) Client {
	return &client{
		l:      l,
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *client) SendHealthEvent(ctx context.Context, input HealthEventInput) error {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	payload := healthEventPayload{
		Key:           uuid.NewString(),
		AlertID:       input.AlertID,
		AccountPk:     input.AccountPk,
		EventType:     eventTypeHealthThreshold,
		Threshold:     input.Threshold,
		CurrentHealth: input.CurrentHealth,
		Message:       input.Message,
	}

	return c.post(ctx, eventsPath, token, payload, nil)
}

// bearerToken returns a cached token, exchanging sid/secret for a new
// one when the cache is empty or about to expire.
func (c *client) bearerToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenSlack)) {
		return c.token, nil
	}

	var resp loginResponse
	if err := c.post(ctx, loginPath, "", loginRequest{SID: c.cfg.SID, Secret: c.cfg.Secret}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login returned empty token")
	}

	c.token = resp.Token
	c.tokenExpiry = tokenExpiry(resp.Token)
	return c.token, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// token is opaque to us, expiry only drives cache refresh.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(exp), 0)
}

func (c *client) post(ctx context.Context, path, token string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

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
		return fmt.Errorf("notifi returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
