package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// TokenSource provides the current bearer token; an empty string means no
// session. The store-backed implementation lives in the store package.
type TokenSource interface {
	Token() string
}

// APIError is a normalized remote API failure carrying the user-displayable
// message extracted from the response envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope is the common shape every remote response carries.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client is the transport layer over the remote recortes API. It attaches
// the bearer token on every request, enforces a fixed timeout and
// normalizes errors. A 401-equivalent response anywhere triggers the
// registered unauthorized hook (global session teardown).
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *zap.Logger
}

// New creates a Client against baseURL with a fixed request timeout.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// OnUnauthorized registers the hook invoked when any call returns a
// 401-equivalent status. The hook is responsible for tearing down the
// session; in-flight unrelated requests are not cancelled.
func (c *Client) OnUnauthorized(hook func()) {
	c.onUnauthorized = hook
}

// doJSON performs a request with an optional JSON body and decodes the
// response into out (which may be nil for fire-and-forget calls).
// fallback is the generic message used when the envelope carries none.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out, fallback)
}

// doMultipart performs a request with a prepared multipart body.
func (c *Client) doMultipart(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, out, fallback)
}

func (c *Client) do(req *http.Request, out interface{}, fallback string) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("remote API request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return &APIError{Message: fallback}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fallback}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelopeMessage(data, fallback)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: envelopeMessage(data, fallback)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: fallback}
		}
	}

	// Some endpoints report failure with a 2xx status and success:false.
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: envelopeMessage(data, fallback)}
	}

	return nil
}

// envelopeMessage extracts the display message from a response body,
// preferring message over error, falling back to the generic string.
func envelopeMessage(data []byte, fallback string) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return fallback
}
