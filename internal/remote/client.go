// Package remote is the HTTP client for the backoffice REST API. Every
// resource lives under /api/<name> and supports list, create, update and
// delete; there is no server-side paging or filtering.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/backoffice/internal/platform/httpx"
)

// RequestIDHeader carries a per-call id so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// Observer receives one sample per call. Status is zero on transport errors.
type Observer interface {
	ObserveRemote(resource, method string, status int, elapsed time.Duration)
}

// Client performs the HTTP round trips shared by every Resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	observer   Observer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The caller owns its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver attaches a metrics sink.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient constructs a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) url(resource string, id int64) string {
	u := c.baseURL + "/api/" + resource
	if id > 0 {
		u += "/" + strconv.FormatInt(id, 10)
	}
	return u
}

// do sends one request and decodes a JSON body into out when both exist.
func (c *Client) do(ctx context.Context, op, resource, method string, id int64, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("remote: %s %s: encode payload: %w", op, resource, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(resource, id), body)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", op, resource, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(resource, method, 0, start)
		c.logger.Warn("remote call failed",
			slog.String("op", op), slog.String("resource", resource),
			slog.String("request_id", reqID), slog.Any("error", err))
		return &Error{Op: op, Resource: resource, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.observe(resource, method, resp.StatusCode, start)

	if resp.StatusCode >= 400 {
		problem := httpx.ReadProblem(resp)
		c.logger.Warn("remote call rejected",
			slog.String("op", op), slog.String("resource", resource),
			slog.String("request_id", reqID), slog.Int("status", resp.StatusCode),
			slog.String("detail", problem.Detail))
		return &Error{Op: op, Resource: resource, Status: resp.StatusCode, Detail: problem.Detail}
	}

	c.logger.Debug("remote call",
		slog.String("op", op), slog.String("resource", resource),
		slog.String("request_id", reqID), slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("remote: %s %s: decode response: %w", op, resource, err)
	}
	return nil
}

func (c *Client) observe(resource, method string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveRemote(resource, method, status, time.Since(start))
	}
}
