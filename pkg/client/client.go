// Package client implements C2 (the authenticated HTTP client) and C3
// (the flat catalog of endpoint operations) of the Anytype toolkit. Its
// shape follows the teacher's *BaseClient-plus-per-family-struct split
// (kagent's pkg/client/{agent,session}.go): a small transport-owning
// core that every endpoint-family file calls into via Get/Post/Patch/
// Delete, decoding typed responses with model's codecs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	anytype "github.com/mwatts/anytype-go"
	"github.com/mwatts/anytype-go/internal/logging"
)

// Client is a single authenticated HTTP client instance bound at
// construction to a base URL, the pinned API version, and an optional
// timeout (spec §4.2). It owns one HTTP connection pool shared across
// every endpoint operation and every task that calls them (spec §5).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logr.Logger
	metrics    *metrics

	mu  sync.RWMutex
	key string // bearer API key; empty until set
}

// Option configures a Client at construction.
type Option func(*Client)

// WithBaseURL overrides the default local-service address.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTimeout overrides the default 30s per-request timeout (spec §6.5).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger overrides the default process logger.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient overrides the underlying *http.Client entirely, useful
// in tests that point at an httptest.Server.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New constructs a Client. The transport is wrapped with otelhttp so
// every request emits a span; the configured exporter/backend remains a
// host concern (spec §1 non-goals on tracing sinks).
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: anytype.DefaultBaseURL,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log:     logging.Get(),
		metrics: newMetrics(prometheus.DefaultRegisterer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAPIKey installs the bearer credential obtained from the challenge/
// create-api-key flow (spec §4.2). Safe for concurrent use; per spec
// §5, a set after a successful use happens-before any subsequent
// request but does not invalidate one already in flight.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
}

// HasAPIKey reports whether a credential has been installed.
func (c *Client) HasAPIKey() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key != ""
}

func (c *Client) apiKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key
}

// Get issues an HTTP GET and decodes the body into out (nil to discard).
func (c *Client) Get(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out)
}

// Post issues an HTTP POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, body, out)
}

// Patch issues an HTTP PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPatch, path, body, out)
}

// Delete issues an HTTP DELETE.
func (c *Client) Delete(ctx context.Context, op, path string) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	ctx, span := otel.Tracer("anytype-go/client").Start(ctx, op)
	defer span.End()

	var bodyReader io.Reader
	var bodyBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return anytype.NewError(anytype.KindDecode, "", op).WithErr(fmt.Errorf("encode request body: %w", err))
		}
		bodyBytes = b
		bodyReader = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return anytype.NewError(anytype.KindNetwork, "", op).WithErr(err)
	}
	req.Header.Set("Anytype-Version", anytype.APIVersion)
	req.Header.Set("Content-Type", "application/json")
	key := c.apiKey()
	authPresent := key != ""
	if authPresent {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	c.logRequest(op, method, path, req.Header, bodyBytes, authPresent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.metrics.observeRequest(op, "network", duration)
		return anytype.NewError(anytype.KindNetwork, "", op).WithErr(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observeRequest(op, "network", duration)
		return anytype.NewError(anytype.KindNetwork, "", op).WithErr(fmt.Errorf("read response body: %w", err))
	}

	c.logResponse(op, resp.StatusCode, duration, resp.Header, respBody)
	c.metrics.observeRequest(op, fmt.Sprintf("%d", resp.StatusCode), duration)

	if cerr := classify(op, resp.StatusCode, respBody, authPresent); cerr != nil {
		return cerr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return anytype.NewError(anytype.KindDecode, "", op).WithErr(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
