package developer

import (
	"strconv"

	"github.com/w3sdev/circle-go/w3s"
)

// NftStandard is a non-fungible token standard.
type NftStandard string

const (
	NftStandardErc721  NftStandard = "ERC721"
	NftStandardErc1155 NftStandard = "ERC1155"
)

// NftStandardValues lists both NFT standards.
var NftStandardValues = []NftStandard{NftStandardErc721, NftStandardErc1155}

// ParseNftStandard validates a wire value such as "ERC721".
func ParseNftStandard(s string) (NftStandard, error) {
	return w3s.ParseEnum("nft standard", s, NftStandardValues)
}

func (n *NftStandard) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("nft standard", data, NftStandardValues)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

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

// ParseScaCore validates a wire value such as "circle_6900_singleowner_v3".
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
	ID         string     `json:"id,omitempty"`
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
	UpdateDate   string `json:"updateDate,omitempty"`
	CreateDate   string `json:"createDate,omitempty"`
}

// Balance is a single fungible token balance entry.
type Balance struct {
	// Amount is the token quantity as a decimal string.
	Amount     string `json:"amount"`
	Token      Token  `json:"token"`
	UpdateDate string `json:"updateDate"`
}

// WalletMetadata names a wallet at creation time.
type WalletMetadata struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// Wallet is a developer-controlled wallet.
type Wallet struct {
	ID          string      `json:"id"`
	Address     string      `json:"address"`
	Blockchain  Blockchain  `json:"blockchain"`
	CreateDate  string      `json:"createDate"`
	UpdateDate  string      `json:"updateDate"`
	CustodyType CustodyType `json:"custodyType"`
	Name        string      `json:"name,omitempty"`
	RefID       string      `json:"refId,omitempty"`
	State       WalletState `json:"state,omitempty"`
	// UserID is set for user-controlled wallets surfaced on this API.
	UserID      string `json:"userId,omitempty"`
	WalletSetID string `json:"walletSetId,omitempty"`
	// InitialPublicKey is the first public key derived for the wallet.
	InitialPublicKey string      `json:"initialPublicKey,omitempty"`
	AccountType      AccountType `json:"accountType,omitempty"`
	ScaCore          ScaCore     `json:"scaCore,omitempty"`
	// TokenBalances is populated by the balance endpoints.
	TokenBalances []Balance `json:"tokenBalances,omitempty"`
}

// Nft is a single NFT holding. ERC-1155 holdings can have Amount above one.
type Nft struct {
	Amount     string `json:"amount"`
	Token      Token  `json:"token"`
	UpdateDate string `json:"updateDate"`
	NftTokenID string `json:"nftTokenId,omitempty"`
	// Metadata is the IPFS or HTTP URI of the NFT metadata.
	Metadata string `json:"metadata,omitempty"`
}

// CreateWalletsRequest is the body of CreateWallets. One wallet is created
// per blockchain per count increment.
type CreateWalletsRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string       `json:"entitySecretCiphertext"`
	WalletSetID            string       `json:"walletSetId"`
	Blockchains            []Blockchain `json:"blockchains"`
	// AccountType defaults to EOA when unset.
	AccountType AccountType `json:"accountType,omitempty"`
	// Count is the number of wallets per blockchain; defaults to 1.
	Count    int              `json:"count,omitempty"`
	Metadata []WalletMetadata `json:"metadata,omitempty"`
}

// UpdateWalletRequest is the body of UpdateWallet.
type UpdateWalletRequest struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// ListWalletsParams filters ListWallets.
type ListWalletsParams struct {
	Blockchain  Blockchain
	Address     string
	WalletSetID string
	RefID       string
	State       WalletState
	CustodyType CustodyType
	Page        w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletsParams) Query() map[string]string {
	q := p.Page.Query()
	if p.Blockchain != "" {
		q["blockchain"] = string(p.Blockchain)
	}
	if p.Address != "" {
		q["address"] = p.Address
	}
	if p.WalletSetID != "" {
		q["walletSetId"] = p.WalletSetID
	}
	if p.RefID != "" {
		q["refId"] = p.RefID
	}
	if p.State != "" {
		q["state"] = string(p.State)
	}
	if p.CustodyType != "" {
		q["custodyType"] = string(p.CustodyType)
	}
	return q
}

// ListWalletsWithBalancesParams filters ListWalletsWithBalances.
type ListWalletsWithBalancesParams struct {
	// IncludeAll also returns wallets holding no balances.
	IncludeAll   bool
	Name         string
	TokenAddress string
	Blockchain   Blockchain
	WalletSetID  string
	// WalletIDs is a comma-separated wallet UUID list.
	WalletIDs   string
	CustodyType CustodyType
	Address     string
	Page        w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletsWithBalancesParams) Query() map[string]string {
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
	if p.Blockchain != "" {
		q["blockchain"] = string(p.Blockchain)
	}
	if p.WalletSetID != "" {
		q["walletSetId"] = p.WalletSetID
	}
	if p.WalletIDs != "" {
		q["walletIds"] = p.WalletIDs
	}
	if p.CustodyType != "" {
		q["custodyType"] = string(p.CustodyType)
	}
	if p.Address != "" {
		q["address"] = p.Address
	}
	return q
}

// ListWalletNftsParams filters ListWalletNfts.
type ListWalletNftsParams struct {
	Standard     NftStandard
	Name         string
	TokenAddress string
	Page         w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletNftsParams) Query() map[string]string {
	q := p.Page.Query()
	if p.Standard != "" {
		q["standard"] = string(p.Standard)
	}
	if p.Name != "" {
		q["name"] = p.Name
	}
	if p.TokenAddress != "" {
		q["tokenAddress"] = p.TokenAddress
	}
	return q
}
