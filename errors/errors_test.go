package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "could not load configuration")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidConfig, err.Code)
	}
	if err.Message != "could not load configuration" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("expected no cause on a fresh error")
	}
}

func TestAppError_Validation_Success(t *testing.T) {
	err := Validation("address: is required; chain: is required")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "address: is required") {
		t.Errorf("expected joined field messages, got %q", err.Message)
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("wallet-id", "must be a valid UUID")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Message != "wallet-id must be a valid UUID" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["field"] != "wallet-id" {
		t.Errorf("expected field=wallet-id, got %v", err.Details["field"])
	}
}

func TestAppError_MissingCredential_Success(t *testing.T) {
	err := MissingCredential("user token", "set --user-token or CIRCLE_USER_TOKEN")
	if err.Code != ErrCodeMissingCredential {
		t.Errorf("expected MISSING_CREDENTIAL, got %s", err.Code)
	}
	if err.Message != "a user token is required: set --user-token or CIRCLE_USER_TOKEN" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["credential"] != "user token" {
		t.Errorf("expected credential=user token, got %v", err.Details["credential"])
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("open circle.yml: no such file")
	err := New(ErrCodeInvalidConfig, "could not load configuration").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetail_Single(t *testing.T) {
	err := Validation("bad input").WithDetail("fields", []string{"address"})
	got, ok := err.Details["fields"].([]string)
	if !ok || len(got) != 1 || got[0] != "address" {
		t.Errorf("expected fields detail, got %v", err.Details["fields"])
	}

	// Overwriting replaces the value.
	err.WithDetail("fields", []string{"chain"})
	got, _ = err.Details["fields"].([]string)
	if len(got) != 1 || got[0] != "chain" {
		t.Errorf("expected overwritten detail, got %v", err.Details["fields"])
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := Validation("blockchain: is required")
	s := err.Error()
	if !strings.Contains(s, "INVALID_INPUT") {
		t.Errorf("expected error string to contain code, got %q", s)
	}
	if !strings.Contains(s, "blockchain: is required") {
		t.Errorf("expected error string to contain message, got %q", s)
	}
	if strings.Contains(s, "cause") {
		t.Errorf("expected no cause suffix without a cause, got %q", s)
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := New(ErrCodeInvalidConfig, "bad config").WithCause(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := Validation("x: is required")
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_IsAppError_Success(t *testing.T) {
	appErr := Validation("x: is required")
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to return true for AppError")
	}

	wrapped := fmt.Errorf("wrapped: %w", appErr)
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}

	plain := fmt.Errorf("plain error")
	if IsAppError(plain) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	appErr := MissingCredential("API key", "set --api-key or CIRCLE_API_KEY")
	wrapped := fmt.Errorf("wrap: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeMissingCredential {
		t.Errorf("expected MISSING_CREDENTIAL, got %s", got.Code)
	}

	_, ok = AsAppError(fmt.Errorf("not an app error"))
	if ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = InvalidInput("transfer-id", "must be a valid UUID")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
