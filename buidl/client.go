package buidl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/w3sdev/circle-go/w3s"
)

// Client calls the Buidl Wallets API.
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

type transfersPayload struct {
	Transfers []Transfer `json:"transfers"`
}

type transferPayload struct {
	Transfer Transfer `json:"transfer"`
}

type userOpsPayload struct {
	UserOperations []UserOp `json:"userOperations"`
}

type userOpPayload struct {
	UserOperation UserOp `json:"userOperation"`
}

type balancesPayload struct {
	TokenBalances []Balance `json:"tokenBalances"`
}

type nftsPayload struct {
	Nfts []Nft `json:"nfts"`
}

// ListTransfers lists transfers for the wallet addresses in params.
// params.WalletAddresses is required by the API.
func (c *Client) ListTransfers(ctx context.Context, params ListTransfersParams) ([]Transfer, error) {
	out, err := w3s.Get[transfersPayload](ctx, c.core, "/v1/w3s/buidl/transfers",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Transfers, nil
}

// GetTransfer retrieves a single transfer by its UUID.
func (c *Client) GetTransfer(ctx context.Context, id string) (*Transfer, error) {
	path := fmt.Sprintf("/v1/w3s/buidl/transfers/%s", url.PathEscape(id))
	out, err := w3s.Get[transferPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.Transfer, nil
}

// ListUserOps lists ERC-4337 user operations matching params.
func (c *Client) ListUserOps(ctx context.Context, params ListUserOpsParams) ([]UserOp, error) {
	out, err := w3s.Get[userOpsPayload](ctx, c.core, "/v1/w3s/buidl/userOps",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.UserOperations, nil
}

// GetUserOp retrieves a single user operation by its UUID.
func (c *Client) GetUserOp(ctx context.Context, id string) (*UserOp, error) {
	path := fmt.Sprintf("/v1/w3s/buidl/userOps/%s", url.PathEscape(id))
	out, err := w3s.Get[userOpPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.UserOperation, nil
}

// ListWalletBalances retrieves token balances for a wallet by its UUID.
func (c *Client) ListWalletBalances(ctx context.Context, walletID string, params ListBalancesParams) ([]Balance, error) {
	path := fmt.Sprintf("/v1/w3s/buidl/wallets/%s/balances", url.PathEscape(walletID))
	out, err := w3s.Get[balancesPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.TokenBalances, nil
}

// ListWalletNfts retrieves NFTs held by a wallet by its UUID.
func (c *Client) ListWalletNfts(ctx context.Context, walletID string, params ListNftsParams) ([]Nft, error) {
	path := fmt.Sprintf("/v1/w3s/buidl/wallets/%s/nfts", url.PathEscape(walletID))
	out, err := w3s.Get[nftsPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Nfts, nil
}

// ListWalletBalancesByAddress retrieves token balances for a wallet
// addressed by blockchain and address.
func (c *Client) ListWalletBalancesByAddress(ctx context.Context, blockchain Blockchain, address string, params ListBalancesParams) ([]Balance, error) {
	path := fmt.Sprintf("/v1/w3s/buidl/wallets/%s/%s/balances",
		url.PathEscape(string(blockchain)), url.PathEscape(address))
	out, err := w3s.Get[balancesPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.TokenBalances, nil
}

// ListWalletNftsByAddress retrieves NFTs for a wallet addressed by
// blockchain and address.
func (c *Client) ListWalletNftsByAddress(ctx context.Context, blockchain Blockchain, address string, params ListNftsParams) ([]Nft, error) {
	path := fmt.Sprintf("/v1/w3s/buidl/wallets/%s/%s/nfts",
		url.PathEscape(string(blockchain)), url.PathEscape(address))
	out, err := w3s.Get[nftsPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Nfts, nil
}
