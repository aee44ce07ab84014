package user

import (
	"context"
	"fmt"
	"net/url"

	"github.com/w3sdev/circle-go/w3s"
)

// Client calls the User-Controlled Wallets API. Operations acting on
// behalf of an end-user take that user's session token, which the client
// sends as the X-User-Token header.
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

type userPayload struct {
	User EndUser `json:"user"`
}

type usersPayload struct {
	Users []EndUser `json:"users"`
}

type otpPayload struct {
	OtpToken string `json:"otpToken"`
}

type challengeIDPayload struct {
	ChallengeID string `json:"challengeId"`
}

type challengePayload struct {
	Challenge Challenge `json:"challenge"`
}

type challengesPayload struct {
	Challenges []Challenge `json:"challenges"`
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

type validateAddressPayload struct {
	IsValid bool `json:"isValid"`
}

// challengePost issues a user-scoped POST whose response carries only a
// challenge ID. The end-user completes the challenge in the device SDK.
func (c *Client) challengePost(ctx context.Context, userToken, path string, body any) (string, error) {
	out, err := w3s.Post[challengeIDPayload](ctx, c.core, path, body,
		w3s.WithUserToken(userToken))
	if err != nil {
		return "", err
	}
	return out.ChallengeID, nil
}

// CreateUser registers an end-user under the developer's entity.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*EndUser, error) {
	out, err := w3s.Post[EndUser](ctx, c.core, "/v1/w3s/users", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers lists the entity's end-users.
func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) ([]EndUser, error) {
	out, err := w3s.Get[usersPayload](ctx, c.core, "/v1/w3s/users",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser retrieves an end-user by the developer-assigned user ID.
func (c *Client) GetUser(ctx context.Context, id string) (*EndUser, error) {
	path := fmt.Sprintf("/v1/w3s/users/%s", url.PathEscape(id))
	out, err := w3s.Get[userPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

// GetUserToken issues a session token for an end-user. Tokens expire
// after 60 minutes; see InspectToken to read the expiry.
func (c *Client) GetUserToken(ctx context.Context, req GetUserTokenRequest) (*UserToken, error) {
	out, err := w3s.Post[UserToken](ctx, c.core, "/v1/w3s/users/token", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserByToken retrieves the end-user a session token belongs to.
func (c *Client) GetUserByToken(ctx context.Context, userToken string) (*EndUser, error) {
	out, err := w3s.Get[EndUser](ctx, c.core, "/v1/w3s/user",
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDeviceTokenSocial issues a device token for social-login flows.
func (c *Client) GetDeviceTokenSocial(ctx context.Context, req DeviceTokenSocialRequest) (*DeviceToken, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[DeviceToken](ctx, c.core, "/v1/w3s/users/social/token", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDeviceTokenEmail issues a device token for email OTP login flows.
func (c *Client) GetDeviceTokenEmail(ctx context.Context, req DeviceTokenEmailRequest) (*EmailDeviceToken, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[EmailDeviceToken](ctx, c.core, "/v1/w3s/users/email/token", req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshUserToken exchanges a refresh token for a new session token.
func (c *Client) RefreshUserToken(ctx context.Context, userToken string, req RefreshUserTokenRequest) (*RefreshedUserToken, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[RefreshedUserToken](ctx, c.core, "/v1/w3s/users/token/refresh", req,
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendOtp resends the email one-time passcode and returns the new OTP
// token.
func (c *Client) ResendOtp(ctx context.Context, userToken string, req ResendOtpRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Post[otpPayload](ctx, c.core, "/v1/w3s/users/email/resendOTP", req,
		w3s.WithUserToken(userToken))
	if err != nil {
		return "", err
	}
	return out.OtpToken, nil
}

// InitializeUser starts the combined set-PIN-and-create-wallets flow and
// returns the challenge ID to complete on the device.
func (c *Client) InitializeUser(ctx context.Context, userToken string, req InitializeUserRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/initialize", req)
}

// CreatePinChallenge starts the set-PIN flow for a user without one.
func (c *Client) CreatePinChallenge(ctx context.Context, userToken string, req SetPinRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/pin", req)
}

// UpdatePinChallenge starts the change-PIN flow.
func (c *Client) UpdatePinChallenge(ctx context.Context, userToken string, req SetPinRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	out, err := w3s.Put[challengeIDPayload](ctx, c.core, "/v1/w3s/user/pin", req,
		w3s.WithUserToken(userToken))
	if err != nil {
		return "", err
	}
	return out.ChallengeID, nil
}

// RestorePinChallenge starts the PIN recovery flow, answered with the
// user's security questions.
func (c *Client) RestorePinChallenge(ctx context.Context, userToken string, req SetPinRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/pin/restore", req)
}

// ListChallenges lists the user's challenges.
func (c *Client) ListChallenges(ctx context.Context, userToken string) ([]Challenge, error) {
	out, err := w3s.Get[challengesPayload](ctx, c.core, "/v1/w3s/user/challenges",
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return out.Challenges, nil
}

// GetChallenge retrieves a challenge by its UUID, typically polled after
// handing the ID to the device SDK.
func (c *Client) GetChallenge(ctx context.Context, userToken, id string) (*Challenge, error) {
	path := fmt.Sprintf("/v1/w3s/user/challenges/%s", url.PathEscape(id))
	out, err := w3s.Get[challengePayload](ctx, c.core, path,
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out.Challenge, nil
}

// CreateWallet starts wallet creation for an initialized user and returns
// the challenge ID. One wallet is created per requested blockchain.
func (c *Client) CreateWallet(ctx context.Context, userToken string, req CreateWalletRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/wallets", req)
}

// ListWallets lists the user's wallets matching params.
func (c *Client) ListWallets(ctx context.Context, userToken string, params ListWalletsParams) ([]Wallet, error) {
	out, err := w3s.Get[walletsPayload](ctx, c.core, "/v1/w3s/wallets",
		w3s.WithQuery(params.Query()), w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return out.Wallets, nil
}

// GetWallet retrieves a wallet by its UUID.
func (c *Client) GetWallet(ctx context.Context, userToken, id string) (*Wallet, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s", url.PathEscape(id))
	out, err := w3s.Get[walletPayload](ctx, c.core, path,
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out.Wallet, nil
}

// UpdateWallet renames a wallet or changes its reference ID.
func (c *Client) UpdateWallet(ctx context.Context, userToken, id string, req UpdateWalletRequest) (*Wallet, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s", url.PathEscape(id))
	out, err := w3s.Put[walletPayload](ctx, c.core, path, req,
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out.Wallet, nil
}

// ListWalletBalances retrieves token balances for a single wallet.
func (c *Client) ListWalletBalances(ctx context.Context, userToken, walletID string, params ListWalletBalancesParams) ([]Balance, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s/balances", url.PathEscape(walletID))
	out, err := w3s.Get[balancesPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()), w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return out.TokenBalances, nil
}

// ListWalletNfts retrieves NFTs held by a wallet.
func (c *Client) ListWalletNfts(ctx context.Context, userToken, walletID string, params ListWalletNftsParams) ([]Nft, error) {
	path := fmt.Sprintf("/v1/w3s/wallets/%s/nfts", url.PathEscape(walletID))
	out, err := w3s.Get[nftsPayload](ctx, c.core, path,
		w3s.WithQuery(params.Query()), w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return out.Nfts, nil
}

// CreateTransfer starts an asset transfer from the user's wallet and
// returns the challenge ID to approve on the device.
func (c *Client) CreateTransfer(ctx context.Context, userToken string, req CreateTransferRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/transactions/transfer", req)
}

// AccelerateTransaction starts resubmission of a stuck transaction with
// higher fees and returns the challenge ID.
func (c *Client) AccelerateTransaction(ctx context.Context, userToken, id string, req AccelerateTransactionRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	path := fmt.Sprintf("/v1/w3s/user/transactions/%s/accelerate", url.PathEscape(id))
	return c.challengePost(ctx, userToken, path, req)
}

// CancelTransaction starts cancellation of a queued or sent transaction
// and returns the challenge ID. Cancellation is best-effort.
func (c *Client) CancelTransaction(ctx context.Context, userToken, id string, req CancelTransactionRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	path := fmt.Sprintf("/v1/w3s/user/transactions/%s/cancel", url.PathEscape(id))
	return c.challengePost(ctx, userToken, path, req)
}

// CreateContractExecution starts a smart contract call from the user's
// wallet and returns the challenge ID.
func (c *Client) CreateContractExecution(ctx context.Context, userToken string, req CreateContractExecutionRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/transactions/contractExecution", req)
}

// CreateWalletUpgrade starts an SCA core upgrade of the user's wallet and
// returns the challenge ID.
func (c *Client) CreateWalletUpgrade(ctx context.Context, userToken string, req CreateWalletUpgradeRequest) (string, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = w3s.NewIdempotencyKey()
	}
	return c.challengePost(ctx, userToken, "/v1/w3s/user/transactions/walletUpgrade", req)
}

// ListTransactions lists the user's transactions matching params.
func (c *Client) ListTransactions(ctx context.Context, userToken string, params ListTransactionsParams) ([]Transaction, error) {
	out, err := w3s.Get[transactionsPayload](ctx, c.core, "/v1/w3s/transactions",
		w3s.WithQuery(params.Query()), w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// GetTransaction retrieves a transaction by its UUID.
func (c *Client) GetTransaction(ctx context.Context, userToken, id string) (*Transaction, error) {
	path := fmt.Sprintf("/v1/w3s/transactions/%s", url.PathEscape(id))
	out, err := w3s.Get[transactionPayload](ctx, c.core, path,
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// GetLowestNonceTransaction retrieves the oldest pending transaction of a
// wallet together with the fees needed to unstick it.
func (c *Client) GetLowestNonceTransaction(ctx context.Context, params LowestNonceTransactionParams) (*LowestNonceTransaction, error) {
	out, err := w3s.Get[LowestNonceTransaction](ctx, c.core, "/v1/w3s/transactions/lowestNonceTransaction",
		w3s.WithQuery(params.Query()))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EstimateTransferFee estimates fees for a prospective transfer.
func (c *Client) EstimateTransferFee(ctx context.Context, userToken string, req EstimateTransferFeeRequest) (*FeeEstimate, error) {
	out, err := w3s.Post[FeeEstimate](ctx, c.core, "/v1/w3s/transactions/transfer/estimateFee", req,
		w3s.WithUserToken(userToken))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EstimateContractExecutionFee estimates fees for a prospective contract
// call.
func (c *Client) EstimateContractExecutionFee(ctx context.Context, userToken string, req EstimateContractExecutionFeeRequest) (*FeeEstimate, error) {
	out, err := w3s.Post[FeeEstimate](ctx, c.core, "/v1/w3s/transactions/contractExecution/estimateFee", req,
		w3s.WithUserToken(userToken))
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

// GetToken retrieves a token definition by its UUID.
func (c *Client) GetToken(ctx context.Context, id string) (*Token, error) {
	path := fmt.Sprintf("/v1/w3s/tokens/%s", url.PathEscape(id))
	out, err := w3s.Get[tokenPayload](ctx, c.core, path)
	if err != nil {
		return nil, err
	}
	return &out.Token, nil
}

// SignMessage starts a message signing challenge. The signature is
// produced on the device once the user approves.
func (c *Client) SignMessage(ctx context.Context, userToken string, req SignMessageRequest) (string, error) {
	return c.challengePost(ctx, userToken, "/v1/w3s/user/sign/message", req)
}

// SignTypedData starts an EIP-712 typed data signing challenge.
func (c *Client) SignTypedData(ctx context.Context, userToken string, req SignTypedDataRequest) (string, error) {
	return c.challengePost(ctx, userToken, "/v1/w3s/user/sign/typedData", req)
}

// SignTransaction starts a raw transaction signing challenge.
func (c *Client) SignTransaction(ctx context.Context, userToken string, req SignTransactionRequest) (string, error) {
	return c.challengePost(ctx, userToken, "/v1/w3s/user/sign/transaction", req)
}

// SignDelegateAction starts a signing challenge for a NEAR delegate
// action.
func (c *Client) SignDelegateAction(ctx context.Context, userToken string, req SignDelegateActionRequest) (string, error) {
	return c.challengePost(ctx, userToken, "/v1/w3s/user/sign/delegateAction", req)
}
