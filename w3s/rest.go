package w3s

import (
	"context"
	"net/http"
)

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithQuery sets URL query parameters.
func WithQuery(params map[string]string) RequestOption {
	return func(r *Request) {
		r.Query = params
	}
}

// WithUserToken scopes the request to an authenticated end-user via the
// X-User-Token header.
func WithUserToken(token string) RequestOption {
	return func(r *Request) {
		r.UserToken = token
	}
}

// Get performs a GET request and decodes the data envelope into T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a JSON body and decodes the data
// envelope into T.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body and decodes the data
// envelope into T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts...)
}

// do executes one call and decodes the envelope.
func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeEnvelope[T](resp)
}
