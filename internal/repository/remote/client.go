package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"locadora-admin/internal/logger"
	"locadora-admin/internal/repository"
)

const serviceName = "rental-api"

// maxErrorBody bounds how much of an error response is kept in APIError.
const maxErrorBody = 4 << 10

// APIError is returned for any non-2xx answer from the rental API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error: %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("API error: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is lets a 404 match repository.ErrNotFound and any other 4xx match repository.ErrRejected.
func (e *APIError) Is(target error) bool {
	switch target {
	case repository.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case repository.ErrRejected:
		return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusNotFound
	}
	return false
}

// Client performs JSON requests against the rental API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends in (when non-nil) as the JSON body and decodes the response into out (when non-nil
// and the response has a body). It reports whether out was populated.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (bool, error) {
	operation := method + " " + path
	logger.ExternalServiceCall(serviceName, operation)

	decoded, err := c.roundTrip(ctx, method, path, in, out)
	logger.ExternalServiceResult(serviceName, operation, err)
	return decoded, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return true, nil
}

// Ping checks that the rental API answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/categorias/", nil, nil)
	return err
}
