package buidl

import "github.com/w3sdev/circle-go/w3s"

// TransferState is the lifecycle state of a transfer.
type TransferState string

const (
	// TransferStateConfirmed means the transfer is on-chain but not final.
	TransferStateConfirmed TransferState = "CONFIRMED"
	// TransferStateComplete means the transfer has reached finality.
	TransferStateComplete TransferState = "COMPLETE"
	TransferStateFailed   TransferState = "FAILED"
)

// TransferStateValues lists every transfer state the API reports.
var TransferStateValues = []TransferState{
	TransferStateConfirmed,
	TransferStateComplete,
	TransferStateFailed,
}

// ParseTransferState validates a wire value such as "COMPLETE".
func ParseTransferState(s string) (TransferState, error) {
	return w3s.ParseEnum("transfer state", s, TransferStateValues)
}

func (t *TransferState) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("transfer state", data, TransferStateValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TransferType is the direction of a transfer relative to the queried wallet.
type TransferType string

const (
	TransferTypeInbound  TransferType = "INBOUND_TRANSFER"
	TransferTypeOutbound TransferType = "OUTBOUND_TRANSFER"
)

// TransferTypeValues lists both transfer directions.
var TransferTypeValues = []TransferType{TransferTypeInbound, TransferTypeOutbound}

// ParseTransferType validates a wire value such as "INBOUND_TRANSFER".
func ParseTransferType(s string) (TransferType, error) {
	return w3s.ParseEnum("transfer type", s, TransferTypeValues)
}

func (t *TransferType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("transfer type", data, TransferTypeValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TransferErrorReason explains a failed transfer.
type TransferErrorReason string

const (
	// TransferErrorFailedReorg means the transfer was dropped in a chain
	// reorganization.
	TransferErrorFailedReorg TransferErrorReason = "FAILED_REORG"
)

var transferErrorReasonValues = []TransferErrorReason{TransferErrorFailedReorg}

func (t *TransferErrorReason) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("transfer error reason", data, transferErrorReasonValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// NftIDMetadata is the NFT detail bundled inside an NFT transfer.
type NftIDMetadata struct {
	// Metadata is the IPFS or HTTP URI of the NFT metadata.
	Metadata string `json:"metadata,omitempty"`
	// NftTokenID is the on-chain token ID.
	NftTokenID string `json:"nftTokenId,omitempty"`
}

// Transfer is a single on-chain transfer event.
type Transfer struct {
	ID       string `json:"id"`
	WalletID string `json:"walletId"`
	// Amount is the transferred quantity as a decimal string.
	Amount string `json:"amount"`
	// BlockDate is when the containing block was mined (ISO-8601).
	BlockDate   string     `json:"blockDate,omitempty"`
	BlockHash   string     `json:"blockHash,omitempty"`
	BlockHeight int64      `json:"blockHeight,omitempty"`
	Blockchain  Blockchain `json:"blockchain"`
	// ErrorReason is set only when State is FAILED.
	ErrorReason TransferErrorReason `json:"errorReason,omitempty"`
	From        string              `json:"from"`
	// Nft is set only for NFT transfers.
	Nft   *NftIDMetadata `json:"nft,omitempty"`
	State TransferState  `json:"state"`
	To    string         `json:"to"`
	// TokenAddress is absent for native coin transfers.
	TokenAddress string       `json:"tokenAddress,omitempty"`
	TokenID      string       `json:"tokenId"`
	TransferType TransferType `json:"transferType"`
	TxHash       string       `json:"txHash"`
	// UserOpHash is set for account-abstraction transfers.
	UserOpHash    string `json:"userOpHash,omitempty"`
	WalletAddress string `json:"walletAddress"`
	CreateDate    string `json:"createDate,omitempty"`
	UpdateDate    string `json:"updateDate,omitempty"`
}

// ListTransfersParams filters ListTransfers.
type ListTransfersParams struct {
	// WalletAddresses is a comma-separated address list. Required.
	WalletAddresses string
	Blockchain      Blockchain
	State           TransferState
	TransferType    TransferType
	TxHash          string
	UserOpHash      string
	Page            w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListTransfersParams) Query() map[string]string {
	q := p.Page.Query()
	if p.WalletAddresses != "" {
		q["walletAddresses"] = p.WalletAddresses
	}
	if p.Blockchain != "" {
		q["blockchain"] = string(p.Blockchain)
	}
	if p.State != "" {
		q["state"] = string(p.State)
	}
	if p.TransferType != "" {
		q["transferType"] = string(p.TransferType)
	}
	if p.TxHash != "" {
		q["txHash"] = p.TxHash
	}
	if p.UserOpHash != "" {
		q["userOpHash"] = p.UserOpHash
	}
	return q
}
