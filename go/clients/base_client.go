package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// BaseClient wraps the shared HTTP plumbing for the feed clients:
// default headers, timeout, and bounded retry with exponential backoff.
type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	retries int
	backoff time.Duration
}

func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
		retries: 1,
		backoff: time.Second,
	}
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

func (c *BaseClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetRetries configures how many attempts a Get makes and the initial
// delay between them. The delay doubles after every failed attempt.
func (c *BaseClient) SetRetries(attempts int, backoff time.Duration) {
	if attempts < 1 {
		attempts = 1
	}
	c.retries = attempts
	c.backoff = backoff
}

func (c *BaseClient) doRequest(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API returned status code: %d, response: %s", resp.StatusCode, string(responseBody))
	}

	return responseBody, nil
}

// Get fetches an endpoint, retrying transient failures with exponential
// backoff. Feed hosts rate-limit aggressively, so every failed attempt
// doubles the wait before the next one.
func (c *BaseClient) Get(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error
	delay := c.backoff

	for attempt := 1; attempt <= c.retries; attempt++ {
		body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt < c.retries {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("max_attempts", c.retries).
				Str("endpoint", endpoint).
				Msg("fetch failed, retrying")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return nil, fmt.Errorf("failed to fetch %s after %d attempts: %w", endpoint, c.retries, lastErr)
}
