// Package user provides the typed client for the Circle User-Controlled
// Wallets API: end-users, session tokens, PIN challenges, wallets,
// transactions, and signing.
//
// Most operations act on behalf of an end-user and take that user's
// session token, which the client sends as the X-User-Token header.
// Mutating operations do not return the finished resource; they return a
// challenge ID, and the end-user approves the challenge with their PIN in
// Circle's mobile or web SDK. Idempotency keys left empty are filled with
// a fresh UUID per call.
package user
