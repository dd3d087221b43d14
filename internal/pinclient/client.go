package pinclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/currentlyhq/currently/internal/app/ports"
)

const maxErrorBodyBytes = 64 << 10

// Client forwards pin requests to the pin persistence endpoint. The
// dispatcher and the endpoint may share a process, but the call always
// goes over HTTP to preserve the original deployment split.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// New constructs a pin client for the given base URL. The token, when
// set, is sent as a bearer credential.
func New(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiToken:   strings.TrimSpace(apiToken),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// RequestError reports a non-success response from the pin endpoint,
// carrying the downstream error message when one was returned.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("pin request failed: status=%d message=%q", e.StatusCode, e.Message)
}

// DownstreamMessage returns the error message the endpoint reported.
func (e *RequestError) DownstreamMessage() string {
	return e.Message
}

// ForwardPin posts the assembled pin request to the persistence endpoint.
func (c *Client) ForwardPin(ctx context.Context, pin ports.PinRequest) error {
	body, err := json.Marshal(pin)
	if err != nil {
		return fmt.Errorf("encode pin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/pins", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build pin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send pin request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	_ = json.Unmarshal(raw, &payload)

	return &RequestError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(payload.Error)}
}
