package user

import "github.com/w3sdev/circle-go/w3s"

// ChallengeType is the kind of action a challenge approves.
type ChallengeType string

const (
	ChallengeTypeInitialize            ChallengeType = "INITIALIZE"
	ChallengeTypeSetPin                ChallengeType = "SET_PIN"
	ChallengeTypeChangePin             ChallengeType = "CHANGE_PIN"
	ChallengeTypeSetSecurityQuestions  ChallengeType = "SET_SECURITY_QUESTIONS"
	ChallengeTypeCreateWallet          ChallengeType = "CREATE_WALLET"
	ChallengeTypeRestorePin            ChallengeType = "RESTORE_PIN"
	ChallengeTypeCreateTransaction     ChallengeType = "CREATE_TRANSACTION"
	ChallengeTypeAccelerateTransaction ChallengeType = "ACCELERATE_TRANSACTION"
	ChallengeTypeCancelTransaction     ChallengeType = "CANCEL_TRANSACTION"
	ChallengeTypeContractExecution     ChallengeType = "CONTRACT_EXECUTION"
	ChallengeTypeWalletUpgrade         ChallengeType = "WALLET_UPGRADE"
	ChallengeTypeSignMessage           ChallengeType = "SIGN_MESSAGE"
	ChallengeTypeSignTypedData         ChallengeType = "SIGN_TYPEDDATA"
	ChallengeTypeSignTransaction       ChallengeType = "SIGN_TRANSACTION"
)

var challengeTypeValues = []ChallengeType{
	ChallengeTypeInitialize,
	ChallengeTypeSetPin,
	ChallengeTypeChangePin,
	ChallengeTypeSetSecurityQuestions,
	ChallengeTypeCreateWallet,
	ChallengeTypeRestorePin,
	ChallengeTypeCreateTransaction,
	ChallengeTypeAccelerateTransaction,
	ChallengeTypeCancelTransaction,
	ChallengeTypeContractExecution,
	ChallengeTypeWalletUpgrade,
	ChallengeTypeSignMessage,
	ChallengeTypeSignTypedData,
	ChallengeTypeSignTransaction,
}

func (c *ChallengeType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("challenge type", data, challengeTypeValues)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ChallengeStatus is where a challenge sits in its lifecycle. Challenges
// move forward only when the end-user acts in the SDK.
type ChallengeStatus string

const (
	ChallengeStatusPending    ChallengeStatus = "PENDING"
	ChallengeStatusInProgress ChallengeStatus = "IN_PROGRESS"
	ChallengeStatusComplete   ChallengeStatus = "COMPLETE"
	ChallengeStatusFailed     ChallengeStatus = "FAILED"
	ChallengeStatusExpired    ChallengeStatus = "EXPIRED"
)

var challengeStatusValues = []ChallengeStatus{
	ChallengeStatusPending,
	ChallengeStatusInProgress,
	ChallengeStatusComplete,
	ChallengeStatusFailed,
	ChallengeStatusExpired,
}

func (c *ChallengeStatus) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("challenge status", data, challengeStatusValues)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Challenge is a pending or settled end-user approval.
type Challenge struct {
	ID     string          `json:"id"`
	Type   ChallengeType   `json:"type"`
	Status ChallengeStatus `json:"status"`
	// CorrelationIDs link the challenge to the resources it created,
	// wallet or transaction UUIDs depending on Type.
	CorrelationIDs []string `json:"correlationIds,omitempty"`
	ErrorCode      *int32   `json:"errorCode,omitempty"`
	ErrorMessage   string   `json:"errorMessage,omitempty"`
}

// InitializeUserRequest is the body of InitializeUser. Blockchains given
// here get wallets created once the challenge completes.
type InitializeUserRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string       `json:"idempotencyKey"`
	AccountType    AccountType  `json:"accountType,omitempty"`
	Blockchains    []Blockchain `json:"blockchains,omitempty"`
	// Metadata names the created wallets, in Blockchains order.
	Metadata []WalletMetadata `json:"metadata,omitempty"`
}

// SetPinRequest is the body of the PIN challenge operations.
type SetPinRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
}
