package user

import (
	"strconv"

	"github.com/w3sdev/circle-go/w3s"
)

// ScaCore identifies the smart contract account implementation of a wallet.
type ScaCore string

const (
	ScaCoreCircle4337V1            ScaCore = "circle_4337_v1"
	ScaCoreCircle6900SingleownerV1 ScaCore = "circle_6900_singleowner_v1"
	ScaCoreCircle6900SingleownerV2 ScaCore = "circle_6900_singleowner_v2"
	ScaCoreCircle6900SingleownerV3 ScaCore = "circle_6900_singleowner_v3"
)

// ScaCoreValues lists every SCA implementation.
var ScaCoreValues = []ScaCore{
	ScaCoreCircle4337V1,
	ScaCoreCircle6900SingleownerV1,
	ScaCoreCircle6900SingleownerV2,
	ScaCoreCircle6900SingleownerV3,
}

// ParseScaCore validates a wire value such as "circle_6900_singleowner_v2".
func ParseScaCore(s string) (ScaCore, error) {
	return w3s.ParseEnum("sca core", s, ScaCoreValues)
}

func (s *ScaCore) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("sca core", data, ScaCoreValues)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Token describes a token tracked by the API.
type Token struct {
	ID         string     `json:"id"`
	Blockchain Blockchain `json:"blockchain"`
	// IsNative reports whether this is the chain's native coin.
	IsNative bool          `json:"isNative"`
	Name     string        `json:"name,omitempty"`
	Standard TokenStandard `json:"standard,omitempty"`
	// Decimals is the number of decimal places; nil when not reported.
	Decimals *int32 `json:"decimals,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	// TokenAddress is absent for native coins.
	TokenAddress string `json:"tokenAddress,omitempty"`
	UpdateDate   string `json:"updateDate"`
	CreateDate   string `json:"createDate"`
}

// Balance is a single fungible token balance entry.
type Balance struct {
	// Amount is the token quantity as a decimal string.
	Amount     string `json:"amount"`
	Token      Token  `json:"token"`
	UpdateDate string `json:"updateDate"`
}

// NftMetadata is the off-chain description of an NFT.
type NftMetadata struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// Image is the URL of the NFT image.
	Image string `json:"image,omitempty"`
}

// Nft is a single NFT holding. ERC-1155 holdings can have Amount above one.
type Nft struct {
	Amount     string       `json:"amount"`
	Token      Token        `json:"token"`
	UpdateDate string       `json:"updateDate"`
	NftTokenID string       `json:"nftTokenId,omitempty"`
	Metadata   *NftMetadata `json:"metadata,omitempty"`
}

// WalletMetadata names a wallet at creation time.
type WalletMetadata struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// Wallet is a wallet controlled by an end-user.
type Wallet struct {
	ID          string      `json:"id"`
	Address     string      `json:"address"`
	Blockchain  Blockchain  `json:"blockchain"`
	CreateDate  string      `json:"createDate"`
	UpdateDate  string      `json:"updateDate"`
	CustodyType CustodyType `json:"custodyType"`
	State       WalletState `json:"state"`
	WalletSetID string      `json:"walletSetId"`
	Name        string      `json:"name,omitempty"`
	RefID       string      `json:"refId,omitempty"`
	UserID      string      `json:"userId,omitempty"`
	// InitialPublicKey is the first public key derived for the wallet.
	InitialPublicKey string      `json:"initialPublicKey,omitempty"`
	AccountType      AccountType `json:"accountType,omitempty"`
	ScaCore          ScaCore     `json:"scaCore,omitempty"`
}

// CreateWalletRequest is the body of CreateWallet. Completion of the
// returned challenge creates one wallet per blockchain.
type CreateWalletRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string           `json:"idempotencyKey"`
	Blockchains    []Blockchain     `json:"blockchains"`
	AccountType    AccountType      `json:"accountType,omitempty"`
	Metadata       []WalletMetadata `json:"metadata,omitempty"`
}

// UpdateWalletRequest is the body of UpdateWallet.
type UpdateWalletRequest struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// ListWalletsParams filters ListWallets.
type ListWalletsParams struct {
	Address     string
	Blockchain  Blockchain
	ScaCore     ScaCore
	WalletSetID string
	RefID       string
	Page        w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletsParams) Query() map[string]string {
	q := p.Page.Query()
	if p.Address != "" {
		q["address"] = p.Address
	}
	if p.Blockchain != "" {
		q["blockchain"] = string(p.Blockchain)
	}
	if p.ScaCore != "" {
		q["scaCore"] = string(p.ScaCore)
	}
	if p.WalletSetID != "" {
		q["walletSetId"] = p.WalletSetID
	}
	if p.RefID != "" {
		q["refId"] = p.RefID
	}
	return q
}

// ListWalletBalancesParams filters ListWalletBalances.
type ListWalletBalancesParams struct {
	// IncludeAll also returns tokens with zero balance.
	IncludeAll   bool
	Name         string
	TokenAddress string
	Standard     TokenStandard
	Page         w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletBalancesParams) Query() map[string]string {
	q := p.Page.Query()
	if p.IncludeAll {
		q["includeAll"] = strconv.FormatBool(p.IncludeAll)
	}
	if p.Name != "" {
		q["name"] = p.Name
	}
	if p.TokenAddress != "" {
		q["tokenAddress"] = p.TokenAddress
	}
	if p.Standard != "" {
		q["standard"] = string(p.Standard)
	}
	return q
}

// ListWalletNftsParams filters ListWalletNfts.
type ListWalletNftsParams struct {
	// IncludeAll also returns NFTs with zero amount.
	IncludeAll   bool
	Name         string
	TokenAddress string
	Standard     TokenStandard
	Page         w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletNftsParams) Query() map[string]string {
	q := p.Page.Query()
	if p.IncludeAll {
		q["includeAll"] = strconv.FormatBool(p.IncludeAll)
	}
	if p.Name != "" {
		q["name"] = p.Name
	}
	if p.TokenAddress != "" {
		q["tokenAddress"] = p.TokenAddress
	}
	if p.Standard != "" {
		q["standard"] = string(p.Standard)
	}
	return q
}
