// Package errors defines the structured error type for failures raised
// before a request leaves the process, such as invalid input or missing
// credentials. Failures involving the Circle API itself (transport
// errors, API error envelopes) are represented by the w3s error kinds
// instead.
package errors
