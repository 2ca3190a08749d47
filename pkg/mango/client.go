package mango

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrAccountNotFound is returned when the account or group reference
// does not resolve on chain.
var ErrAccountNotFound = fmt.Errorf("invalid margin account or mango group")

// groupOr falls back to the configured group when the alert record
// carries none.
func (c *httpClient) groupOr(groupPk string) string {
	if groupPk == "" {
		return c.group
	}
	return groupPk
}

func (c *httpClient) GetHealthRatio(ctx context.Context, accountPk, groupPk string) (AccountHealth, error) {
	var health AccountHealth
	path := fmt.Sprintf("/v3/accounts/%s/health?group=%s", url.PathEscape(accountPk), url.QueryEscape(c.groupOr(groupPk)))
	if err := c.get(ctx, path, &health); err != nil {
		return AccountHealth{}, err
	}
	return health, nil
}

func (c *httpClient) ValidateAccount(ctx context.Context, accountPk, groupPk string) error {
	if !IsValidPublicKey(accountPk) || (groupPk != "" && !IsValidPublicKey(groupPk)) {
		return ErrAccountNotFound
	}
	path := fmt.Sprintf("/v3/accounts/%s?group=%s", url.PathEscape(accountPk), url.QueryEscape(c.groupOr(groupPk)))
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return err
	}
	if !out.Exists {
		return ErrAccountNotFound
	}
	return nil
}

func (c *httpClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrAccountNotFound
	default:
		return fmt.Errorf("health endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
