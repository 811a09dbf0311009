package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/logger"
)

// ErrUnexpectedStatus is wrapped by every non-success response error
var ErrUnexpectedStatus = errors.New("unexpected status code")

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetBytes performs a GET request with the given headers and returns the response body
	// Rate limited (429) and server error (5xx) responses are retried with exponential backoff
	GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// Head performs a single HEAD request without retry
	// The caller is responsible for closing the response body
	Head(ctx context.Context, url string) (*http.Response, error)

	// GetPartialContent fetches at most maxBytes from the beginning of the resource
	GetPartialContent(ctx context.Context, url string, maxBytes int64) ([]byte, error)
}

// RetryConfig tunes the exponential backoff used by GetBytes
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig is used when NewHTTPClient gets a zero RetryConfig
var DefaultRetryConfig = RetryConfig{
	InitialInterval: 2 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  1 * time.Minute,
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	retry  RetryConfig
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, retry RetryConfig) HTTPClient {
	if retry == (RetryConfig{}) {
		retry = DefaultRetryConfig
	}
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// closeBody closes a response body, logging failures
func closeBody(ctx context.Context, resp *http.Response, url string) {
	if err := resp.Body.Close(); err != nil {
		logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
	}
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry for rate limiting and server errors
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, newRequest func() (*http.Request, error)) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Context cancellation is not worth retrying
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer closeBody(ctx, resp, req.URL.String())

		if resp.StatusCode == http.StatusTooManyRequests {
			logger.WarnCtx(ctx, "rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}

		// Other non-2xx status codes are permanent errors
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return backoff.Permanent(fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = c.retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	notify := func(err error, wait time.Duration) {
		logger.DebugCtx(ctx, "retrying request", zap.Error(err), zap.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// GetBytes performs a GET request and returns the raw response body
func (c *RealHTTPClient) GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.doRequestWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
}

// Head performs a HEAD request
func (c *RealHTTPClient) Head(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// GetPartialContent requests the first maxBytes of the resource with a Range header
// Servers ignoring the range still only have maxBytes read from them
func (c *RealHTTPClient) GetPartialContent(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", maxBytes-1))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer closeBody(ctx, resp, url)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
