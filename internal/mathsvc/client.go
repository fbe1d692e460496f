// Package mathsvc calls an external TeX rendering service over HTTP.
package mathsvc

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

// Client posts expressions to a render endpoint and returns its markup.
type Client struct {
	endpoint   string
	httpClient *http.Client
	wait       func(context.Context, time.Duration) error
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		wait: sleepCtx,
	}
}

type renderRequest struct {
	Expression  string `json:"expression"`
	DisplayMode bool   `json:"displayMode"`
}

type renderResponse struct {
	HTML  string `json:"html"`
	Error string `json:"error,omitempty"`
}

// RenderMath renders one expression, retrying transient failures.
func (c *Client) RenderMath(ctx context.Context, src string, display bool) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx, Backoff(attempt-1)); err != nil {
				return "", fmt.Errorf("retry wait: %w", errors.Join(err, lastErr))
			}
		}
		markup, err := c.renderOnce(ctx, src, display)
		if err == nil {
			return markup, nil
		}
		lastErr = err
		if !IsRetryable(err) || ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *Client) renderOnce(ctx context.Context, src string, display bool) (string, error) {
	body, err := json.Marshal(renderRequest{Expression: src, DisplayMode: display})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("math service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("math service status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var out renderResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("render %q: %s", truncate(src, 40), out.Error)
	}
	if out.HTML == "" {
		return "", errors.New("empty markup from math service")
	}
	return out.HTML, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
