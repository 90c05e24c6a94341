// Package client talks to the projxchange marketplace backend. It is the only
// place HTTP happens; state containers and the catalog engine sit on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/projxchange/marketplace-client/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds every request; the backend has no long-running calls.
const DefaultTimeout = 15 * time.Second

// errorResponse is the error body shape the backend uses for non-2xx statuses.
type errorResponse struct {
	Message string `json:"message"`
}

// Client is a thin, concurrency-safe wrapper over the marketplace REST API.
// The bearer token is the whole of its session state: present means
// authenticated, absent means every protected call short-circuits locally.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient substitutes the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger substitutes the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New builds a client for the API at baseURL. The client is safe for use
// from multiple goroutines.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.With().Str("component", "client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token for subsequent protected calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken ends the session; protected calls fail locally afterwards.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Authenticated reports whether a bearer token is installed.
func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// request describes one round trip to the backend.
type request struct {
	method string
	path   string
	body   any
	// auth requires a token; when it is set and none is installed, the call
	// resolves locally to an unauthenticated error without touching the
	// network. action names the user-facing operation for that message.
	auth   bool
	action string
	// fallback is the notification text used when a failed response carries
	// no message of its own.
	fallback string
	// out, when non-nil, receives the decoded success body.
	out any
}

// do executes one request and maps every failure into the errs taxonomy:
// transport errors become NetworkError, non-2xx statuses become RequestFailed
// carrying the server-provided message when the body has one.
func (c *Client) do(ctx context.Context, r request) error {
	token := ""
	if r.auth {
		token = c.currentToken()
		if token == "" {
			return errs.NewUnauthenticated(r.action)
		}
	}

	var bodyReader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", r.action, err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", r.action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", r.method).Str("path", r.path).Msg("request did not complete")
		return errs.NewNetworkError(r.action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewNetworkError(r.action, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp errorResponse
		_ = json.Unmarshal(respBody, &errResp)
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("method", r.method).
			Str("path", r.path).
			Str("serverMessage", errResp.Message).
			Msg("backend rejected request")
		return errs.NewRequestFailed(resp.StatusCode, errResp.Message, r.fallback)
	}

	if r.out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, r.out); err != nil {
			c.logger.Error().Err(err).Str("method", r.method).Str("path", r.path).Msg("could not decode response body")
			return errs.NewDecodeError(resp.StatusCode, r.action, err)
		}
	}
	return nil
}
