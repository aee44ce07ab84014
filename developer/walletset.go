package developer

import "github.com/w3sdev/circle-go/w3s"

// WalletSet groups wallets derived from one cryptographic parent key.
type WalletSet struct {
	ID          string      `json:"id"`
	CustodyType CustodyType `json:"custodyType"`
	CreateDate  string      `json:"createDate"`
	UpdateDate  string      `json:"updateDate"`
	Name        string      `json:"name,omitempty"`
	// UserID is set for wallet sets owned by an end user.
	UserID string `json:"userId,omitempty"`
}

// CreateWalletSetRequest is the body of CreateWalletSet.
type CreateWalletSetRequest struct {
	// EntitySecretCiphertext is the freshly encrypted entity secret.
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	Name           string `json:"name,omitempty"`
}

// UpdateWalletSetRequest is the body of UpdateWalletSet.
type UpdateWalletSetRequest struct {
	Name string `json:"name,omitempty"`
}

// ListWalletSetsParams filters ListWalletSets.
type ListWalletSetsParams struct {
	Page w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListWalletSetsParams) Query() map[string]string {
	return p.Page.Query()
}
