package user

// SignMessageRequest is the body of SignMessage. Completing the returned
// challenge produces the signature on the user's device.
type SignMessageRequest struct {
	WalletID string `json:"walletId"`
	// Message is UTF-8 text, or hex when EncodedByHex is set.
	Message      string `json:"message"`
	EncodedByHex *bool  `json:"encodedByHex,omitempty"`
	Memo         string `json:"memo,omitempty"`
}

// SignTypedDataRequest is the body of SignTypedData.
type SignTypedDataRequest struct {
	WalletID string `json:"walletId"`
	// Data is the JSON-encoded EIP-712 payload.
	Data string `json:"data"`
	Memo string `json:"memo,omitempty"`
}

// SignTransactionRequest is the body of SignTransaction. Provide either
// RawTransaction or a JSON-encoded Transaction.
type SignTransactionRequest struct {
	WalletID       string `json:"walletId"`
	RawTransaction string `json:"rawTransaction,omitempty"`
	Transaction    string `json:"transaction,omitempty"`
	Memo           string `json:"memo,omitempty"`
}

// SignDelegateActionRequest is the body of SignDelegateAction.
type SignDelegateActionRequest struct {
	WalletID string `json:"walletId"`
	// UnsignedDelegateAction is the Borsh-serialized NEAR delegate action,
	// base64 encoded.
	UnsignedDelegateAction string `json:"unsignedDelegateAction"`
}
