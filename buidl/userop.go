package buidl

import "github.com/w3sdev/circle-go/w3s"

// UserOpState is the lifecycle state of an ERC-4337 user operation.
type UserOpState string

const (
	// UserOpStateSent means the operation was submitted to the bundler.
	UserOpStateSent      UserOpState = "SENT"
	UserOpStateConfirmed UserOpState = "CONFIRMED"
	UserOpStateComplete  UserOpState = "COMPLETE"
	UserOpStateFailed    UserOpState = "FAILED"
)

// UserOpStateValues lists every user operation state the API reports.
var UserOpStateValues = []UserOpState{
	UserOpStateSent,
	UserOpStateConfirmed,
	UserOpStateComplete,
	UserOpStateFailed,
}

// ParseUserOpState validates a wire value such as "SENT".
func ParseUserOpState(s string) (UserOpState, error) {
	return w3s.ParseEnum("user operation state", s, UserOpStateValues)
}

func (u *UserOpState) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("user operation state", data, UserOpStateValues)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// UserOpErrorReason explains a failed user operation.
type UserOpErrorReason string

const (
	UserOpErrorFailedOnChain  UserOpErrorReason = "FAILED_ON_CHAIN"
	UserOpErrorFailedReplaced UserOpErrorReason = "FAILED_REPLACED"
)

var userOpErrorReasonValues = []UserOpErrorReason{
	UserOpErrorFailedOnChain,
	UserOpErrorFailedReplaced,
}

func (u *UserOpErrorReason) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("user operation error reason", data, userOpErrorReasonValues)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// UserOperation carries the raw ERC-4337 fields of a user operation.
// Fields without a value are gas or paymaster parameters the bundler did
// not report.
type UserOperation struct {
	CallData string `json:"callData"`
	Nonce    string `json:"nonce"`
	// Sender is the smart account address.
	Sender       string `json:"sender"`
	CallGasLimit string `json:"callGasLimit,omitempty"`
	// Factory is the counterfactual deployment factory contract.
	Factory              string `json:"factory,omitempty"`
	FactoryData          string `json:"factoryData,omitempty"`
	MaxFeePerGas         string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas,omitempty"`
	Paymaster            string `json:"paymaster,omitempty"`
	// PaymasterAndData is the v0.6 encoding; PaymasterData the v0.7 one.
	PaymasterAndData              string `json:"paymasterAndData,omitempty"`
	PaymasterData                 string `json:"paymasterData,omitempty"`
	PaymasterPostOpGasLimit       string `json:"paymasterPostOpGasLimit,omitempty"`
	PaymasterVerificationGasLimit string `json:"paymasterVerificationGasLimit,omitempty"`
	PreVerificationGas            string `json:"preVerificationGas,omitempty"`
	Signature                     string `json:"signature,omitempty"`
	VerificationGasLimit          string `json:"verificationGasLimit,omitempty"`
}

// UserOp is a single ERC-4337 user operation tracked by the API.
type UserOp struct {
	ID         string      `json:"id"`
	Blockchain Blockchain  `json:"blockchain"`
	State      UserOpState `json:"state"`
	// UserOpHash is the EIP-4337 hash of the operation.
	UserOpHash    string        `json:"userOpHash"`
	UserOperation UserOperation `json:"userOperation"`
	// RefID is the caller-supplied reference identifier.
	RefID         string `json:"refId,omitempty"`
	ActualGasCost string `json:"actualGasCost,omitempty"`
	ActualGasUsed string `json:"actualGasUsed,omitempty"`
	BlockDate     string `json:"blockDate,omitempty"`
	BlockHash     string `json:"blockHash,omitempty"`
	BlockHeight   int64  `json:"blockHeight,omitempty"`
	// ErrorReason is set only when State is FAILED.
	ErrorReason  UserOpErrorReason `json:"errorReason,omitempty"`
	RevertReason string            `json:"revertReason,omitempty"`
	To           string            `json:"to,omitempty"`
	TxHash       string            `json:"txHash,omitempty"`
	CreateDate   string            `json:"createDate,omitempty"`
	UpdateDate   string            `json:"updateDate,omitempty"`
}

// ListUserOpsParams filters ListUserOps.
type ListUserOpsParams struct {
	Blockchain Blockchain
	RefID      string
	// Senders is a comma-separated smart account address list.
	Senders    string
	State      UserOpState
	TxHash     string
	UserOpHash string
	Page       w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListUserOpsParams) Query() map[string]string {
	q := p.Page.Query()
	if p.Blockchain != "" {
		q["blockchain"] = string(p.Blockchain)
	}
	if p.RefID != "" {
		q["refId"] = p.RefID
	}
	if p.Senders != "" {
		q["senders"] = p.Senders
	}
	if p.State != "" {
		q["state"] = string(p.State)
	}
	if p.TxHash != "" {
		q["txHash"] = p.TxHash
	}
	if p.UserOpHash != "" {
		q["userOpHash"] = p.UserOpHash
	}
	return q
}
