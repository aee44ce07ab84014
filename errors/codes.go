package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Client-side error codes. Errors reported by the Circle API carry
// their own numeric codes and are never mapped onto these.
const (
	// ErrCodeInvalidInput indicates request input failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingCredential indicates a required credential is not configured.
	ErrCodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"
	// ErrCodeInvalidConfig indicates the resolved configuration is unusable.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
