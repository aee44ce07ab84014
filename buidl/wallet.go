package buidl

import "github.com/w3sdev/circle-go/w3s"

// FtStandard is a fungible token standard. The native coin of a chain has
// no ERC standard and uses the empty string on the wire, so optional
// FtStandard fields are pointers: nil means unset, a pointer to
// FtStandardNative means "native".
type FtStandard string

const (
	FtStandardNative FtStandard = ""
	FtStandardErc20  FtStandard = "ERC20"
)

// FtStandardValues lists both fungible token standards.
var FtStandardValues = []FtStandard{FtStandardNative, FtStandardErc20}

// ParseFtStandard validates a wire value ("" or "ERC20").
func ParseFtStandard(s string) (FtStandard, error) {
	return w3s.ParseEnum("fungible token standard", s, FtStandardValues)
}

func (f *FtStandard) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("fungible token standard", data, FtStandardValues)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// TokenStandard is a combined fungible/non-fungible token standard.
type TokenStandard string

const (
	TokenStandardErc20   TokenStandard = "ERC20"
	TokenStandardErc721  TokenStandard = "ERC721"
	TokenStandardErc1155 TokenStandard = "ERC1155"
)

// TokenStandardValues lists every token standard the API reports.
var TokenStandardValues = []TokenStandard{
	TokenStandardErc20,
	TokenStandardErc721,
	TokenStandardErc1155,
}

// ParseTokenStandard validates a wire value such as "ERC20".
func ParseTokenStandard(s string) (TokenStandard, error) {
	return w3s.ParseEnum("token standard", s, TokenStandardValues)
}

func (t *TokenStandard) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("token standard", data, TokenStandardValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

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

// Token describes a token held by a wallet.
type Token struct {
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
}

// Balance is a single fungible token balance entry.
type Balance struct {
	// Amount is the token quantity as a decimal string.
	Amount     string `json:"amount"`
	Token      Token  `json:"token"`
	UpdateDate string `json:"updateDate"`
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

// ListBalancesParams filters the wallet balance endpoints.
type ListBalancesParams struct {
	// Standard filters by fungible token standard. Nil means no filter;
	// use w3s.Ptr(FtStandardNative) to select native coin balances.
	Standard     *FtStandard
	Name         string
	TokenAddress string
	Page         w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListBalancesParams) Query() map[string]string {
	q := p.Page.Query()
	if p.Standard != nil {
		q["standard"] = string(*p.Standard)
	}
	if p.Name != "" {
		q["name"] = p.Name
	}
	if p.TokenAddress != "" {
		q["tokenAddress"] = p.TokenAddress
	}
	return q
}

// ListNftsParams filters the wallet NFT endpoints.
type ListNftsParams struct {
	Standard     NftStandard
	Name         string
	TokenAddress string
	Page         w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListNftsParams) Query() map[string]string {
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
