package quickbase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues calls against the Quickbase REST API. Its configuration is
// fixed at construction, so one Client may be shared between goroutines.
type Client struct {
	config Config
	doer   Doer
	logger hclog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP transport built from Config.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// NewClient creates a new Quickbase client
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quickbase config: %w", err)
	}

	c := &Client{
		config: cfg,
		doer:   cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("quickbase-client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	cfg := c.config
	v := *cfg.TLSVerify
	cfg.TLSVerify = &v
	return cfg
}

// Do sends method to path with an optional pre-serialized body and returns
// the raw response. Exactly one network call is made.
func (c *Client) Do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	req, err := c.NewRequest(method, path, body)
	if err != nil {
		return nil, err
	}
	return c.Send(ctx, req)
}

// Send executes a Request built by NewRequest.
func (c *Client) Send(ctx context.Context, r *Request) (*Response, error) {
	endpoint := c.config.BaseURL + r.Path
	requestID := uuid.NewString()

	var bodyReader io.Reader
	if r.Body != nil {
		bodyReader = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, endpoint, bodyReader)
	if err != nil {
		return nil, c.transportError(r.Method, endpoint, requestID, fmt.Errorf("failed to create request: %w", err))
	}
	for _, h := range r.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	c.logger.Debug("sending request",
		"method", r.Method,
		"path", r.Path,
		"request_id", requestID,
		"body_length", len(r.Body),
	)

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, c.transportError(r.Method, endpoint, requestID, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(r.Method, endpoint, requestID, fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug("received response",
		"method", r.Method,
		"path", r.Path,
		"request_id", requestID,
		"status", resp.StatusCode,
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) transportError(method, endpoint, requestID string, err error) error {
	c.logger.Error("quickbase request failed",
		"method", method,
		"endpoint", endpoint,
		"request_id", requestID,
		"error", err,
	)
	return &TransportError{Method: method, Endpoint: endpoint, Err: err}
}

// get and post are the shared tails of the façade operations.
func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, op, path string, v interface{}) (*Response, error) {
	body, err := encodeJSON(v)
	if err != nil {
		return nil, invalidArgument(op, fmt.Errorf("failed to marshal request body: %w", err))
	}
	return c.Do(ctx, http.MethodPost, path, body)
}
