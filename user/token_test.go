package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return raw
}

func TestInspectToken(t *testing.T) {
	now := time.Now()
	raw := signedTestToken(t, jwt.MapClaims{
		"sub": "u1",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	info, err := InspectToken(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.UserID != "u1" {
		t.Errorf("expected u1, got %q", info.UserID)
	}
	if info.Expired {
		t.Error("expected live token")
	}
	if info.ExpiresAt.Before(now) {
		t.Errorf("unexpected expiry %v", info.ExpiresAt)
	}
}

func TestInspectToken_Expired(t *testing.T) {
	raw := signedTestToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	info, err := InspectToken(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.Expired {
		t.Error("expected expired token")
	}
}

func TestInspectToken_Malformed(t *testing.T) {
	if _, err := InspectToken("not-a-jwt"); err == nil {
		t.Fatal("expected error")
	}
}
