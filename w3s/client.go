package w3s

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/w3sdev/circle-go/logger"
)

// Client is the shared HTTP core used by every API surface. It is immutable
// after construction and safe for concurrent use; each call owns only its
// own request/response lifecycle.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	inst       *instruments
}

// New creates a client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		log:        log.WithComponent("w3s"),
		inst:       newInstruments(),
	}, nil
}

// String renders the client for debugging. The API key is redacted.
func (c *Client) String() string {
	return fmt.Sprintf("w3s.Client{BaseURL: %s, APIKey: <redacted>, Timeout: %s}",
		c.config.BaseURL, c.config.Timeout)
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Do executes one API call and returns the raw response. A returned error
// is always KindTransport; envelope interpretation belongs to the typed
// helpers in rest.go. One call is one attempt: no retries.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	ctx, span := c.inst.start(ctx, req, requestID)

	resp, err := c.execute(ctx, req, requestID)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.inst.end(ctx, span, status, elapsed, err)

	if err != nil {
		c.log.Warn("request failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, req.Path,
			logger.FieldRequestID, requestID,
			logger.FieldError, err.Error(),
		))
		return nil, err
	}

	c.log.Debug("request completed", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, elapsed.Milliseconds(),
		logger.FieldRequestID, requestID,
	))
	return resp, nil
}

// execute builds and sends the HTTP request.
func (c *Client) execute(ctx context.Context, req Request, requestID string) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
		RequestID:  requestID,
	}, nil
}

// buildRequest constructs an *http.Request from the client config and
// request. Every request carries the bearer API key and a fresh
// X-Request-Id; X-User-Token is added only when the request sets one.
func (c *Client) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, NewTransportError(fmt.Errorf("encode body: %w", err))
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("create request: %w", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	httpReq.Header.Set("X-Request-Id", requestID)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	if req.UserToken != "" {
		httpReq.Header.Set("X-User-Token", req.UserToken)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
