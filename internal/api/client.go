// Package api implements the stateless HTTP JSON clients for the two remote
// services: authentication and finance records. Both are consumed as black
// boxes; every call attaches the bearer credential and maps non-2xx
// responses onto APIError. There is no retry, backoff or timeout policy:
// a failed call surfaces immediately.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"finanzas/internal/logging"
)

// httpClient is the shared request plumbing of both service clients.
type httpClient struct {
	baseURL string
	hc      *http.Client
	logger  logging.Logger
}

// serverMessage is the error body shape both services use.
type serverMessage struct {
	Message string `json:"message"`
}

// doJSON executes one authenticated JSON request and decodes the response
// into out (when non-nil). token may be empty for unprotected calls.
// fallback is the localized message used when the failure carries no
// server-provided one.
func (c *httpClient) doJSON(ctx context.Context, method, path string, query url.Values, token string, body, out any, fallback string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error(ctx, "request failed", "method", method, "url", u, "error", err)
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var sm serverMessage
		_ = json.Unmarshal(data, &sm)
		msg := sm.Message
		if msg == "" {
			msg = fallback
		}
		c.logger.Warn(ctx, "non-2xx response",
			"method", method, "url", u, "status", resp.StatusCode, "message", msg)
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	c.logger.Debug(ctx, "request OK", "method", method, "url", u, "status", resp.StatusCode)

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
	}
	return nil
}
