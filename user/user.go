package user

import "github.com/w3sdev/circle-go/w3s"

// PinStatus is the state of an end-user's PIN.
type PinStatus string

const (
	PinStatusEnabled PinStatus = "ENABLED"
	PinStatusUnset   PinStatus = "UNSET"
	PinStatusLocked  PinStatus = "LOCKED"
)

// PinStatusValues lists every PIN status.
var PinStatusValues = []PinStatus{PinStatusEnabled, PinStatusUnset, PinStatusLocked}

// ParsePinStatus validates a wire value such as "ENABLED".
func ParsePinStatus(s string) (PinStatus, error) {
	return w3s.ParseEnum("pin status", s, PinStatusValues)
}

func (p *PinStatus) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("pin status", data, PinStatusValues)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// EndUserStatus is the account status of an end-user.
type EndUserStatus string

const (
	EndUserStatusEnabled  EndUserStatus = "ENABLED"
	EndUserStatusDisabled EndUserStatus = "DISABLED"
)

var endUserStatusValues = []EndUserStatus{EndUserStatusEnabled, EndUserStatusDisabled}

func (e *EndUserStatus) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("user status", data, endUserStatusValues)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// SecurityQuestionStatus is the state of an end-user's recovery questions.
type SecurityQuestionStatus string

const (
	SecurityQuestionStatusEnabled SecurityQuestionStatus = "ENABLED"
	SecurityQuestionStatusUnset   SecurityQuestionStatus = "UNSET"
	SecurityQuestionStatusLocked  SecurityQuestionStatus = "LOCKED"
)

var securityQuestionStatusValues = []SecurityQuestionStatus{
	SecurityQuestionStatusEnabled,
	SecurityQuestionStatusUnset,
	SecurityQuestionStatusLocked,
}

func (s *SecurityQuestionStatus) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("security question status", data, securityQuestionStatusValues)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SecurityDetails is the lock bookkeeping for a PIN or for security
// questions.
type SecurityDetails struct {
	// FailedAttempts counts failures since the last successful attempt;
	// nil when not reported.
	FailedAttempts       *int32 `json:"failedAttempts,omitempty"`
	LockedDate           string `json:"lockedDate,omitempty"`
	LockedExpiryDate     string `json:"lockedExpiryDate,omitempty"`
	LastLockOverrideDate string `json:"lastLockOverrideDate,omitempty"`
}

// EndUser is an end-user of the application.
type EndUser struct {
	ID                      string                 `json:"id"`
	CreateDate              string                 `json:"createDate,omitempty"`
	PinStatus               PinStatus              `json:"pinStatus,omitempty"`
	Status                  EndUserStatus          `json:"status,omitempty"`
	SecurityQuestionStatus  SecurityQuestionStatus `json:"securityQuestionStatus,omitempty"`
	PinDetails              *SecurityDetails       `json:"pinDetails,omitempty"`
	SecurityQuestionDetails *SecurityDetails       `json:"securityQuestionDetails,omitempty"`
}

// UserToken is a short-lived end-user session token. It is what the
// user-scoped operations expect as their userToken argument.
type UserToken struct {
	UserToken string `json:"userToken"`
	// EncryptionKey feeds Circle's mobile and web SDKs.
	EncryptionKey string `json:"encryptionKey,omitempty"`
}

// CreateUserRequest is the body of CreateUser.
type CreateUserRequest struct {
	// UserID is the application's identifier for the user, not assigned
	// by Circle.
	UserID string `json:"userId"`
}

// GetUserTokenRequest is the body of GetUserToken.
type GetUserTokenRequest struct {
	UserID string `json:"userId"`
}

// ListUsersParams filters ListUsers.
type ListUsersParams struct {
	PinStatus PinStatus
	Page      w3s.PageParams
}

// Query serializes the set fields into query parameters.
func (p ListUsersParams) Query() map[string]string {
	q := p.Page.Query()
	if p.PinStatus != "" {
		q["pinStatus"] = string(p.PinStatus)
	}
	return q
}
