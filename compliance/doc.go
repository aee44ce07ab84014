// Package compliance provides the typed client for the Circle Compliance
// Engine API: risk screening of blockchain addresses before interacting
// with them.
//
// Screening is idempotent. Repeating a request with the same idempotency
// key returns the original result without re-running the screening.
package compliance
