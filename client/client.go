// Package client wraps the remote REST API consumed by the sync layer.
// Unlike the local storage layer it never swallows failures: network errors,
// non-2xx statuses and malformed bodies all surface as errors, and the sync
// coordinator decides what to do with them.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL matches the development server shipped in this repository.
const DefaultBaseURL = "http://localhost:3000/api"

// APIError is returned for any response outside the 2xx range.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s returned status %d", e.Endpoint, e.StatusCode)
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	r := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	return &Client{http: r}
}

// envelope is the optional { success, data } wrapper some endpoints use.
// Only data matters: when present the client unwraps it, otherwise the whole
// body is the payload.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// request is the single primitive every endpoint goes through. out may be
// nil when the response body is irrelevant (deletes).
func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return fmt.Errorf("api request failed (%s): %w", endpoint, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Endpoint: endpoint}
	}
	if out == nil {
		return nil
	}

	payload := resp.Body()
	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Data != nil {
		payload = env.Data
	}
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("api response malformed (%s): %w", endpoint, err)
	}
	return nil
}
