package developer

import (
	"encoding/json"
	"strconv"

	"github.com/w3sdev/circle-go/w3s"
)

// TransactionState is the lifecycle state of a transaction. States are
// server-driven; the client never transitions them locally.
type TransactionState string

const (
	TransactionStateCancelled TransactionState = "CANCELLED"
	TransactionStateConfirmed TransactionState = "CONFIRMED"
	TransactionStateComplete  TransactionState = "COMPLETE"
	// TransactionStateDenied means compliance screening rejected the
	// transaction before broadcast.
	TransactionStateDenied    TransactionState = "DENIED"
	TransactionStateFailed    TransactionState = "FAILED"
	TransactionStateInitiated TransactionState = "INITIATED"
	TransactionStateCleared   TransactionState = "CLEARED"
	TransactionStateQueued    TransactionState = "QUEUED"
	TransactionStateSent      TransactionState = "SENT"
	// TransactionStateStuck means the transaction is not confirming,
	// usually from underpriced gas. See AccelerateTransaction.
	TransactionStateStuck TransactionState = "STUCK"
)

// TransactionStateValues lists every transaction state the API reports.
var TransactionStateValues = []TransactionState{
	TransactionStateCancelled,
	TransactionStateConfirmed,
	TransactionStateComplete,
	TransactionStateDenied,
	TransactionStateFailed,
	TransactionStateInitiated,
	TransactionStateCleared,
	TransactionStateQueued,
	TransactionStateSent,
	TransactionStateStuck,
}

// ParseTransactionState validates a wire value such as "COMPLETE".
func ParseTransactionState(s string) (TransactionState, error) {
	return w3s.ParseEnum("transaction state", s, TransactionStateValues)
}

func (t *TransactionState) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("transaction state", data, TransactionStateValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeInbound  TransactionType = "INBOUND"
	TransactionTypeOutbound TransactionType = "OUTBOUND"
)

// TransactionTypeValues lists both transaction directions.
var TransactionTypeValues = []TransactionType{TransactionTypeInbound, TransactionTypeOutbound}

// ParseTransactionType validates a wire value ("INBOUND" or "OUTBOUND").
func ParseTransactionType(s string) (TransactionType, error) {
	return w3s.ParseEnum("transaction type", s, TransactionTypeValues)
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("transaction type", data, TransactionTypeValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Operation is what a transaction does on-chain.
type Operation string

const (
	OperationTransfer           Operation = "TRANSFER"
	OperationContractExecution  Operation = "CONTRACT_EXECUTION"
	OperationContractDeployment Operation = "CONTRACT_DEPLOYMENT"
)

// OperationValues lists every operation the API reports.
var OperationValues = []Operation{
	OperationTransfer,
	OperationContractExecution,
	OperationContractDeployment,
}

// ParseOperation validates a wire value such as "TRANSFER".
func ParseOperation(s string) (Operation, error) {
	return w3s.ParseEnum("operation", s, OperationValues)
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("operation", data, OperationValues)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// RiskScore is the severity of a transaction screening signal.
type RiskScore string

const (
	RiskScoreUnknown   RiskScore = "UNKNOWN"
	RiskScoreLow       RiskScore = "LOW"
	RiskScoreMedium    RiskScore = "MEDIUM"
	RiskScoreHigh      RiskScore = "HIGH"
	RiskScoreSevere    RiskScore = "SEVERE"
	RiskScoreBlocklist RiskScore = "BLOCKLIST"
)

var riskScoreValues = []RiskScore{
	RiskScoreUnknown,
	RiskScoreLow,
	RiskScoreMedium,
	RiskScoreHigh,
	RiskScoreSevere,
	RiskScoreBlocklist,
}

func (r *RiskScore) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk score", data, riskScoreValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskCategory classifies the nature of a screening signal.
type RiskCategory string

const (
	RiskCategorySanctions          RiskCategory = "SANCTIONS"
	RiskCategoryCsam               RiskCategory = "CSAM"
	RiskCategoryIllicitBehavior    RiskCategory = "ILLICIT_BEHAVIOR"
	RiskCategoryGambling           RiskCategory = "GAMBLING"
	RiskCategoryTerroristFinancing RiskCategory = "TERRORIST_FINANCING"
	RiskCategoryUnsupported        RiskCategory = "UNSUPPORTED"
	RiskCategoryFrozen             RiskCategory = "FROZEN"
	RiskCategoryOther              RiskCategory = "OTHER"
	RiskCategoryHighRiskIndustry   RiskCategory = "HIGH_RISK_INDUSTRY"
	RiskCategoryPep                RiskCategory = "PEP"
	RiskCategoryTrusted            RiskCategory = "TRUSTED"
	RiskCategoryHacking            RiskCategory = "HACKING"
	RiskCategoryHumanTrafficking   RiskCategory = "HUMAN_TRAFFICKING"
	RiskCategorySpecialMeasures    RiskCategory = "SPECIAL_MEASURES"
)

var riskCategoryValues = []RiskCategory{
	RiskCategorySanctions,
	RiskCategoryCsam,
	RiskCategoryIllicitBehavior,
	RiskCategoryGambling,
	RiskCategoryTerroristFinancing,
	RiskCategoryUnsupported,
	RiskCategoryFrozen,
	RiskCategoryOther,
	RiskCategoryHighRiskIndustry,
	RiskCategoryPep,
	RiskCategoryTrusted,
	RiskCategoryHacking,
	RiskCategoryHumanTrafficking,
	RiskCategorySpecialMeasures,
}

func (r *RiskCategory) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk category", data, riskCategoryValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskType relates a screening signal to the transaction.
type RiskType string

const (
	RiskTypeOwnership    RiskType = "OWNERSHIP"
	RiskTypeCounterparty RiskType = "COUNTERPARTY"
	RiskTypeIndirect     RiskType = "INDIRECT"
)

var riskTypeValues = []RiskType{RiskTypeOwnership, RiskTypeCounterparty, RiskTypeIndirect}

func (r *RiskType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk type", data, riskTypeValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskAction is an action screening prescribed for a transaction.
type RiskAction string

const (
	RiskActionApprove      RiskAction = "APPROVE"
	RiskActionReview       RiskAction = "REVIEW"
	RiskActionFreezeWallet RiskAction = "FREEZE_WALLET"
	RiskActionDeny         RiskAction = "DENY"
)

var riskActionValues = []RiskAction{
	RiskActionApprove,
	RiskActionReview,
	RiskActionFreezeWallet,
	RiskActionDeny,
}

func (r *RiskAction) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk action", data, riskActionValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskSignal is one piece of evidence from transaction screening.
type RiskSignal struct {
	Source         string         `json:"source,omitempty"`
	SourceValue    string         `json:"sourceValue,omitempty"`
	RiskScore      RiskScore      `json:"riskScore,omitempty"`
	RiskCategories []RiskCategory `json:"riskCategories,omitempty"`
	RiskType       RiskType       `json:"type,omitempty"`
}

// ScreeningDecision is the compliance evaluation attached to a transaction.
type ScreeningDecision struct {
	ScreeningDate string       `json:"screeningDate,omitempty"`
	RuleName      string       `json:"ruleName,omitempty"`
	Actions       []RiskAction `json:"actions,omitempty"`
	Reasons       []RiskSignal `json:"reasons,omitempty"`
}

// Transaction is a transaction tracked by the API. Most fields are only
// set for particular operations or after particular lifecycle states.
type Transaction struct {
	ID              string           `json:"id"`
	State           TransactionState `json:"state"`
	Blockchain      Blockchain       `json:"blockchain,omitempty"`
	TransactionType TransactionType  `json:"transactionType,omitempty"`
	CreateDate      string           `json:"createDate"`
	UpdateDate      string           `json:"updateDate"`
	// AbiFunctionSignature and AbiParameters describe contract executions.
	AbiFunctionSignature string          `json:"abiFunctionSignature,omitempty"`
	AbiParameters        []any           `json:"abiParameters,omitempty"`
	Amounts              []string        `json:"amounts,omitempty"`
	AmountInUSD          string          `json:"amountInUsd,omitempty"`
	BlockHash            string          `json:"blockHash,omitempty"`
	BlockHeight          int64           `json:"blockHeight,omitempty"`
	ContractAddress      string          `json:"contractAddress,omitempty"`
	CustodyType          CustodyType     `json:"custodyType,omitempty"`
	DestinationAddress   string          `json:"destinationAddress,omitempty"`
	ErrorReason          string          `json:"errorReason,omitempty"`
	ErrorDetails         string          `json:"errorDetails,omitempty"`
	EstimatedFee         *TransactionFee `json:"estimatedFee,omitempty"`
	FeeLevel             FeeLevel        `json:"feeLevel,omitempty"`
	FirstConfirmDate     string          `json:"firstConfirmDate,omitempty"`
	NetworkFee           string          `json:"networkFee,omitempty"`
	NetworkFeeInUSD      string          `json:"networkFeeInUsd,omitempty"`
	// Nfts lists NFT token IDs moved by the transaction.
	Nfts          []string  `json:"nfts,omitempty"`
	Operation     Operation `json:"operation,omitempty"`
	RefID         string    `json:"refId,omitempty"`
	SourceAddress string    `json:"sourceAddress,omitempty"`
	TokenID       string    `json:"tokenId,omitempty"`
	TxHash        string    `json:"txHash,omitempty"`
	UserID        string    `json:"userId,omitempty"`
	WalletID      string    `json:"walletId,omitempty"`
	// TransactionScreeningEvaluation is present when compliance screening
	// evaluated the transaction.
	TransactionScreeningEvaluation *ScreeningDecision `json:"transactionScreeningEvaluation,omitempty"`
}

// ListTransactionsParams filters ListTransactions.
type ListTransactionsParams struct {
	Blockchain         Blockchain
	CustodyType        CustodyType
	DestinationAddress string
	// IncludeAll also returns transactions of archived wallets.
	IncludeAll      bool
	Operation       Operation
	RefID           string
	SourceAddress   string
	State           TransactionState
	TokenAddress    string
	TransactionHash string
	TransactionType TransactionType
	// WalletIDs is a comma-separated wallet UUID list.
	WalletIDs string
	Page      w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListTransactionsParams) Query() map[string]string {
	q := p.Page.Query()
	if p.Blockchain != "" {
		q["blockchain"] = string(p.Blockchain)
	}
	if p.CustodyType != "" {
		q["custodyType"] = string(p.CustodyType)
	}
	if p.DestinationAddress != "" {
		q["destinationAddress"] = p.DestinationAddress
	}
	if p.IncludeAll {
		q["includeAll"] = strconv.FormatBool(p.IncludeAll)
	}
	if p.Operation != "" {
		q["operation"] = string(p.Operation)
	}
	if p.RefID != "" {
		q["refId"] = p.RefID
	}
	if p.SourceAddress != "" {
		q["sourceAddress"] = p.SourceAddress
	}
	if p.State != "" {
		q["state"] = string(p.State)
	}
	if p.TokenAddress != "" {
		q["tokenAddress"] = p.TokenAddress
	}
	if p.TransactionHash != "" {
		q["transactionHash"] = p.TransactionHash
	}
	if p.TransactionType != "" {
		q["transactionType"] = string(p.TransactionType)
	}
	if p.WalletIDs != "" {
		q["walletIds"] = p.WalletIDs
	}
	return q
}

// CreateTransferRequest is the body of CreateTransfer.
type CreateTransferRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
	WalletID               string `json:"walletId"`
	// Blockchain is required for native asset transfers, where no TokenID
	// identifies the asset.
	Blockchain         Blockchain `json:"blockchain,omitempty"`
	TokenID            string     `json:"tokenId,omitempty"`
	DestinationAddress string     `json:"destinationAddress"`
	Amounts            []string   `json:"amounts,omitempty"`
	NftTokenIDs        []string   `json:"nftTokenIds,omitempty"`
	RefID              string     `json:"refId,omitempty"`
	// FeeLevel and the explicit gas fields are mutually exclusive.
	FeeLevel    FeeLevel `json:"feeLevel,omitempty"`
	GasLimit    string   `json:"gasLimit,omitempty"`
	GasPrice    string   `json:"gasPrice,omitempty"`
	MaxFee      string   `json:"maxFee,omitempty"`
	PriorityFee string   `json:"priorityFee,omitempty"`
}

// CreateContractExecutionRequest is the body of CreateContractExecution.
// Provide either AbiFunctionSignature with AbiParameters, or raw CallData.
type CreateContractExecutionRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string     `json:"entitySecretCiphertext"`
	WalletID               string     `json:"walletId"`
	Blockchain             Blockchain `json:"blockchain,omitempty"`
	ContractAddress        string     `json:"contractAddress"`
	// AbiFunctionSignature is e.g. "transfer(address,uint256)".
	AbiFunctionSignature string   `json:"abiFunctionSignature,omitempty"`
	AbiParameters        []any    `json:"abiParameters,omitempty"`
	CallData             string   `json:"callData,omitempty"`
	FeeLevel             FeeLevel `json:"feeLevel,omitempty"`
	GasLimit             string   `json:"gasLimit,omitempty"`
	MaxFee               string   `json:"maxFee,omitempty"`
	PriorityFee          string   `json:"priorityFee,omitempty"`
	RefID                string   `json:"refId,omitempty"`
	// Amount is the native value to send with the call.
	Amount string `json:"amount,omitempty"`
}

// CancelTransactionRequest is the body of CancelTransaction.
type CancelTransactionRequest struct {
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
}

// AccelerateTransactionRequest is the body of AccelerateTransaction.
type AccelerateTransactionRequest struct {
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
}

// ValidateAddressRequest is the body of ValidateAddress.
type ValidateAddressRequest struct {
	Blockchain Blockchain `json:"blockchain"`
	Address    string     `json:"address"`
}

// EstimateTransferFeeRequest is the body of EstimateTransferFee.
type EstimateTransferFeeRequest struct {
	SourceAddress      string     `json:"sourceAddress,omitempty"`
	Blockchain         Blockchain `json:"blockchain,omitempty"`
	DestinationAddress string     `json:"destinationAddress,omitempty"`
	Amounts            []string   `json:"amounts,omitempty"`
	Nfts               []string   `json:"nfts,omitempty"`
	TokenID            string     `json:"tokenId,omitempty"`
	FeeLevel           FeeLevel   `json:"feeLevel,omitempty"`
	GasLimit           string     `json:"gasLimit,omitempty"`
	GasPrice           string     `json:"gasPrice,omitempty"`
}

// FeeEstimate breaks an estimate down by priority. The gas fields are set
// for smart contract account transactions.
type FeeEstimate struct {
	Low    *TransactionFee `json:"low,omitempty"`
	Medium *TransactionFee `json:"medium,omitempty"`
	High   *TransactionFee `json:"high,omitempty"`

	CallGasLimit         string `json:"callGasLimit,omitempty"`
	VerificationGasLimit string `json:"verificationGasLimit,omitempty"`
	PreVerificationGas   string `json:"preVerificationGas,omitempty"`
}

// SignMessageRequest is the body of SignMessage. Address the wallet either
// by WalletID or by Blockchain plus WalletAddress.
type SignMessageRequest struct {
	WalletID      string     `json:"walletId,omitempty"`
	Blockchain    Blockchain `json:"blockchain,omitempty"`
	WalletAddress string     `json:"walletAddress,omitempty"`
	// Message is UTF-8 text, or hex when EncodedByHex is set.
	Message      string `json:"message"`
	EncodedByHex *bool  `json:"encodedByHex,omitempty"`
	Memo         string `json:"memo,omitempty"`
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
}

// SignTypedDataRequest is the body of SignTypedData.
type SignTypedDataRequest struct {
	WalletID      string     `json:"walletId,omitempty"`
	Blockchain    Blockchain `json:"blockchain,omitempty"`
	WalletAddress string     `json:"walletAddress,omitempty"`
	// TypedData is the JSON-encoded EIP-712 payload.
	TypedData string `json:"typedData"`
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
}

// SignTransactionRequest is the body of SignTransaction. Provide either
// RawTransaction or a structured Transaction object.
type SignTransactionRequest struct {
	WalletID       string          `json:"walletId,omitempty"`
	Blockchain     Blockchain      `json:"blockchain,omitempty"`
	WalletAddress  string          `json:"walletAddress,omitempty"`
	RawTransaction string          `json:"rawTransaction,omitempty"`
	Transaction    json.RawMessage `json:"transaction,omitempty"`
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
}

// SignedTransaction is the result of SignTransaction.
type SignedTransaction struct {
	Signature         string `json:"signature"`
	SignedTransaction string `json:"signedTransaction"`
	// TxHash is set once the transaction is broadcast.
	TxHash string `json:"txHash,omitempty"`
}
