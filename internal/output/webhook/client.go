package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxRetries = 3

// postClient POSTs JSON payloads with retry on 429 and 5xx responses
// (exponential backoff: 1s, 2s, 4s).
type postClient struct {
	httpClient *http.Client
	url        string
	headers    map[string]string
}

// apiError represents a non-2xx HTTP response.
type apiError struct {
	StatusCode int
	Body       string // first 512 bytes
}

func (e *apiError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *apiError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// postJSON sends the payload and retries transient failures.
func (c *postClient) postJSON(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: marshal: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := c.post(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err

		var apiErr *apiError
		if !errors.As(err, &apiErr) || !apiErr.retryable() {
			return err
		}
	}
	return fmt.Errorf("webhook: giving up after %d retries: %w", maxRetries, lastErr)
}

func (c *postClient) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &apiError{StatusCode: resp.StatusCode, Body: string(snippet)}
}
