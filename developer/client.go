package developer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/w3sdev/circle-go/w3s"
)

// Client calls the Developer-Controlled Wallets API.
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

type walletSetPayload struct {
	WalletSet WalletSet `json:"walletSet"`
}

type walletSetsPayload struct {
	WalletSets []WalletSet `json:"walletSets"`
}

type walletPayload struct {
	Wallet Wallet `json:"wallet"`
}

type walletsPayload struct {
	Wallets []Wallet `json:"wallets"`
}

type balancesPayload struct {
	TokenBalances []Balance `json:"tokenBalances"`
}

type nftsPayload struct {
	Nfts []Nft `json:"nfts"`
}

type tokenPayload struct {
	Token Token `json:"token"`
}

type transactionPayload struct {
	Transaction Transaction `json:"transaction"`
}

type transactionsPayload struct {
	Transactions []Transaction `json:"transactions"`
}

type signaturePayload struct {
	Signature string `json:"signature"`
}

type validateAddressPayload struct {
	IsValid bool `json:"isValid"`
}

// CreateWalletSet creates a wallet set.
func (c *Client) CreateWalletSet(ctx context.Context, req CreateWalletSetRequest) (*WalletSet, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[walletSetPayload](ctx, c.core, "/v1/w3s/developer/walletSets", req)
	if err != nil {
		return nil, err
	}
	return &out.WalletSet, nil
}

// GetWalletSet retrieves a wallet set by its UUID.
func (c *Client) GetWalletSet(ctx context.Context, id string) (*WalletSet, error) {
	path := fmt.Sprintf("/v1/w3s/developer/walletSets/%s", url.PathEscape(id))
	out, err := w3s.Get[walletSetPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.WalletSet, nil
}

// UpdateWalletSet renames a wallet set.
func (c *Client) UpdateWalletSet(ctx context.Context, id string, req UpdateWalletSetRequest) (*WalletSet, error) {
	path := fmt.Sprintf("/v1/w3s/developer/walletSets/%s", url.PathEscape(id))
	out, err := w3s.Put[walletSetPayload](ctx, c.core, path, req)
	if err != nil {
		return nil, err
	}
	return &out.WalletSet, nil
}

// ListWalletSets lists the entity's wallet sets.
func (c *Client) ListWalletSets(ctx context.Context, params ListWalletSetsParams) ([]WalletSet, error) {
	out, err := w3s.Get[walletSetsPayload](ctx, c.core, "/v1/w3s/walletSets",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.WalletSets, nil
}

// CreateWallets creates wallets in a wallet set, one per requested
// blockchain per count increment.
func (c *Client) CreateWallets(ctx context.Context, req CreateWalletsRequest) ([]Wallet, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[walletsPayload](ctx, c.core, "/v1/w3s/developer/wallets", req)
	if err != nil {
		return nil, err
	}
	return out.Wallets, nil
}

// ListWallets lists wallets matching params.
func (c *Client) ListWallets(ctx context.Context, params ListWalletsParams) ([]Wallet, error) {
	out, err := w3s.Get[walletsPayload](ctx, c.core, "/v1/w3s/wallets",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Wallets, nil
}

// GetWallet retrieves a wallet by its UUID.
func (c *Client) GetWallet(ctx context.Context, id string) (*Wallet, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s", url.PathEscape(id))
	out, err := w3s.Get[walletPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.Wallet, nil
}

// UpdateWallet renames a wallet or changes its reference ID.
func (c *Client) UpdateWallet(ctx context.Context, id string, req UpdateWalletRequest) (*Wallet, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s", url.PathEscape(id))
	out, err := w3s.Put[walletPayload](ctx, c.core, path, req)
	if err != nil {
		return nil, err
	}
	return &out.Wallet, nil
}

// ListWalletsWithBalances lists developer wallets with their token
// balances attached.
func (c *Client) ListWalletsWithBalances(ctx context.Context, params ListWalletsWithBalancesParams) ([]Wallet, error) {
	out, err := w3s.Get[walletsPayload](ctx, c.core, "/v1/w3s/developer/wallets/balances",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Wallets, nil
}

// ListWalletBalances retrieves token balances for a single wallet.
func (c *Client) ListWalletBalances(ctx context.Context, walletID string, page w3s.PageParams) ([]Balance, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s/balances", url.PathEscape(walletID))
	out, err := w3s.Get[balancesPayload](ctx, c.core, path,
		w3s.WithQuery(page.Query()))
	if err != nil {
		return nil, err
	}
	return out.TokenBalances, nil
}

// ListWalletNfts retrieves NFTs held by a wallet.
func (c *Client) ListWalletNfts(ctx context.Context, walletID string, params ListWalletNftsParams) ([]Nft, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s/nfts", url.PathEscape(walletID))
	out, err := w3s.Get[nftsPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Nfts, nil
}

// SignMessage signs a message with a wallet's key and returns the
// hex-encoded signature.
func (c *Client) SignMessage(ctx context.Context, req SignMessageRequest) (string, error) {
	out, err := w3s.Post[signaturePayload](ctx, c.core, "/v1/w3s/developer/sign/message", req)
	if err != nil {
		return "", err
	}
	return out.Signature, nil
}

// SignTypedData signs an EIP-712 typed data payload and returns the
// hex-encoded signature.
func (c *Client) SignTypedData(ctx context.Context, req SignTypedDataRequest) (string, error) {
	out, err := w3s.Post[signaturePayload](ctx, c.core, "/v1/w3s/developer/sign/typedData", req)
	if err != nil {
		return "", err
	}
	return out.Signature, nil
}

// SignTransaction signs a raw transaction without broadcasting it.
func (c *Client) SignTransaction(ctx context.Context, req SignTransactionRequest) (*SignedTransaction, error) {
	out, err := w3s.Post[SignedTransaction](ctx, c.core, "/v1/w3s/developer/sign/transaction", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions lists transactions matching params.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) ([]Transaction, error) {
	out, err := w3s.Get[transactionsPayload](ctx, c.core, "/v1/w3s/transactions",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// GetTransaction retrieves a transaction by its UUID.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	path := fmt.Sprintf("/v1/w3s/transactions/%s", url.PathEscape(id))
	out, err := w3s.Get[transactionPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// CreateTransfer initiates an asset transfer from a developer wallet.
func (c *Client) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*Transaction, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[transactionPayload](ctx, c.core, "/v1/w3s/developer/transactions/transfer", req)
	if err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// GetFeeParameters returns fee estimates for the transfer described by
// req, without creating a transaction.
func (c *Client) GetFeeParameters(ctx context.Context, req CreateTransferRequest) (*FeeEstimate, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[FeeEstimate](ctx, c.core, "/v1/w3s/developer/transactions/feeParameters", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContractExecution initiates a smart contract call from a
// developer wallet.
func (c *Client) CreateContractExecution(ctx context.Context, req CreateContractExecutionRequest) (*Transaction, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[transactionPayload](ctx, c.core, "/v1/w3s/developer/transactions/contractExecution", req)
	if err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// CancelTransaction requests cancellation of a queued or sent
// transaction. Cancellation is best-effort; watch the returned state.
func (c *Client) CancelTransaction(ctx context.Context, id string, req CancelTransactionRequest) (*Transaction, error) {
	path := fmt.Sprintf("/v1/w3s/developer/transactions/%s/cancel", url.PathEscape(id))
	out, err := w3s.Post[transactionPayload](ctx, c.core, path, req)
	if err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// AccelerateTransaction resubmits a stuck transaction with higher fees.
func (c *Client) AccelerateTransaction(ctx context.Context, id string, req AccelerateTransactionRequest) (*Transaction, error) {
	path := fmt.Sprintf("/v1/w3s/developer/transactions/%s/accelerate", url.PathEscape(id))
	out, err := w3s.Post[transactionPayload](ctx, c.core, path, req)
	if err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// GetToken retrieves a token definition by its UUID.
func (c *Client) GetToken(ctx context.Context, id string) (*Token, error) {
	path := fmt.Sprintf("/v1/w3s/tokens/%s", url.PathEscape(id))
	out, err := w3s.Get[tokenPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.Token, nil
}

// EstimateTransferFee estimates fees for a prospective transfer.
func (c *Client) EstimateTransferFee(ctx context.Context, req EstimateTransferFeeRequest) (*FeeEstimate, error) {
	out, err := w3s.Post[FeeEstimate](ctx, c.core, "/v1/w3s/transactions/transfer/estimateFee", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateAddress checks whether an address is well-formed for a
// blockchain.
func (c *Client) ValidateAddress(ctx context.Context, req ValidateAddressRequest) (bool, error) {
	out, err := w3s.Post[validateAddressPayload](ctx, c.core, "/v1/w3s/transactions/validateAddress", req)
	if err != nil {
		return false, err
	}
	return out.IsValid, nil
}
