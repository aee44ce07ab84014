package w3s

import "github.com/google/uuid"

// NewIdempotencyKey returns a fresh UUIDv4 for the idempotencyKey field of
// mutating requests. Generate one per logical operation: the server treats
// a request replayed with the same key as the original operation, so a key
// must never be shared across different intents.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
