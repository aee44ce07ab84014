package user

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is the decoded, unverified content of a user session token.
type TokenInfo struct {
	UserID    string         `json:"userId,omitempty"`
	IssuedAt  time.Time      `json:"issuedAt,omitzero"`
	ExpiresAt time.Time      `json:"expiresAt,omitzero"`
	Expired   bool           `json:"expired"`
	Claims    map[string]any `json:"claims,omitempty"`
}

// InspectToken decodes a user session token without verifying its
// signature. Session tokens are signed by the service; callers only read
// the subject and lifetime here, for example to refresh before expiry.
func InspectToken(raw string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse user token: %w", err)
	}
	info := &TokenInfo{Claims: claims}
	if sub, err := claims.GetSubject(); err == nil {
		info.UserID = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = time.Now().After(exp.Time)
	}
	return info, nil
}
