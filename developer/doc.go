// Package developer provides the typed client for the Circle
// Developer-Controlled Wallets API: wallet sets, wallets, transactions,
// signing, and token lookup.
//
// Mutating operations carry an entitySecretCiphertext, the entity secret
// encrypted for Circle. Producing it is external to this client; the value
// is forwarded opaquely. Idempotency keys left empty are filled with a
// fresh UUID per call.
package developer
