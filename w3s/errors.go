package w3s

import (
	"errors"
	"fmt"
)

// ErrorKind classifies client errors. The three kinds are mutually
// exclusive: every failed call reports exactly one of them.
type ErrorKind int

const (
	// KindTransport indicates the call never produced a usable HTTP
	// exchange: DNS, connect, TLS or timeout failures, or a response body
	// that was not JSON at all.
	KindTransport ErrorKind = iota
	// KindAPI indicates a non-2xx response with a well-formed error
	// envelope. APICode carries the server's error code, which is not the
	// HTTP status.
	KindAPI
	// KindDecode indicates a body that was valid JSON but did not match
	// the expected schema, a contract drift between client and API that
	// must be fixed in the type definitions, not retried.
	KindDecode
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the structured error returned by every failing call.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// HTTPStatus is the HTTP status code (0 when no response arrived).
	HTTPStatus int
	// APICode is the server-defined error code from the error envelope.
	// Only meaningful for KindAPI.
	APICode int
	// Message describes the error. For KindAPI this is the server's
	// message verbatim.
	Message string
	// Body is a snippet of the raw response body, kept for diagnosing
	// envelope mismatches. Nil when no response arrived.
	Body []byte
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindAPI:
		return fmt.Sprintf("w3s: api error %d (HTTP %d): %s", e.APICode, e.HTTPStatus, e.Message)
	case e.HTTPStatus > 0:
		return fmt.Sprintf("w3s: %s (HTTP %d): %s", e.Kind, e.HTTPStatus, e.Message)
	default:
		return fmt.Sprintf("w3s: %s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a low-level failure that prevented a usable HTTP
// exchange.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewAPIError builds the error for a well-formed API error envelope.
func NewAPIError(httpStatus, apiCode int, message string) *Error {
	return &Error{
		Kind:       KindAPI,
		HTTPStatus: httpStatus,
		APICode:    apiCode,
		Message:    message,
	}
}

// NewDecodeError builds the error for a schema mismatch in a JSON body.
func NewDecodeError(httpStatus int, body []byte, err error) *Error {
	msg := "response body does not match expected schema"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Kind:       KindDecode,
		HTTPStatus: httpStatus,
		Message:    msg,
		Body:       bodySnippet(body),
		Err:        err,
	}
}

// maxBodySnippet bounds how much of a response body an error retains.
const maxBodySnippet = 512

func bodySnippet(body []byte) []byte {
	if len(body) > maxBodySnippet {
		return body[:maxBodySnippet]
	}
	return body
}

// IsTransport checks if an error is a transport-level failure.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

// IsAPI checks if an error is a server-reported API error.
func IsAPI(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAPI
}

// IsDecode checks if an error is a schema mismatch.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindDecode
}

// AsAPIError extracts the structured error when err is a server-reported
// API error.
func AsAPIError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e, true
	}
	return nil, false
}

// APICode extracts the server error code from a KindAPI error. The second
// return is false for any other error.
func APICode(err error) (int, bool) {
	if e, ok := AsAPIError(err); ok {
		return e.APICode, true
	}
	return 0, false
}

// InvalidEnumError reports a string that failed closed-set lookup for an
// enumerated wire type.
type InvalidEnumError struct {
	// Enum names the enumerated type, e.g. "blockchain".
	Enum string
	// Value is the rejected input.
	Value string
}

// Error implements the error interface.
func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("w3s: invalid %s value %q", e.Enum, e.Value)
}

// IsInvalidEnum checks if an error is a closed-set lookup rejection,
// including one wrapped inside a decode error.
func IsInvalidEnum(err error) bool {
	var e *InvalidEnumError
	return errors.As(err, &e)
}
