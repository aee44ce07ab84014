package compliance

import (
	"context"

	"github.com/w3sdev/circle-go/w3s"
)

// Client calls the Compliance Engine API.
type Client struct {
	core *w3s.Client
}

// New builds a client from the given configuration.
func New(cfg w3s.Config) (*Client, error) {
	core, err := w3s.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{core: core}, nil
}

// Wrap builds a client on top of an existing core client, sharing its
// transport and configuration.
func Wrap(core *w3s.Client) *Client {
	return &Client{core: core}
}

// ScreenAddress screens a blockchain address for compliance risk. A missing
// idempotency key is filled with a fresh one.
func (c *Client) ScreenAddress(ctx context.Context, req ScreenAddressRequest) (*AddressScreening, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[AddressScreening](ctx, c.core, "/v1/w3s/compliance/screening/addresses", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
