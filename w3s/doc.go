// Package w3s provides the shared HTTP core for the Circle Web3 Services
// API clients.
//
// Every Circle endpoint speaks the same envelope protocol: a 2xx response
// wraps its payload as {"data": ...}, and a non-2xx response carries
// {"code": <int>, "message": <string>} where code is an API-defined error
// code, not the HTTP status. This package implements that protocol once,
// covering authenticated request building, envelope decoding and the error
// taxonomy, so the per-surface packages (buidl, compliance, developer,
// user) only declare their type catalogs and endpoint paths.
//
// # Basic Usage
//
//	client, err := w3s.New(w3s.Config{
//	    APIKey: os.Getenv("CIRCLE_API_KEY"),
//	})
//
//	wallet, err := w3s.Get[Wallet](ctx, client, "/v1/w3s/wallets/"+id)
//
// Each call sends Authorization: Bearer <api key> plus a fresh X-Request-Id,
// and optionally X-User-Token for operations scoped to an end-user. Calls
// are independent round trips: no retries, no caching, no shared mutable
// state beyond the transport's connection pool. A *Client is safe for
// concurrent use.
//
// # Errors
//
// Every failure is a *w3s.Error with one of three kinds:
//
//   - KindTransport: the request never produced a usable HTTP exchange
//     (DNS, connect, TLS, timeout) or the body was not JSON at all.
//   - KindAPI: the server answered non-2xx with a well-formed error
//     envelope; APICode and Message carry the server's values.
//   - KindDecode: the body was valid JSON but did not match the expected
//     schema, on either the success or the error path.
//
// Enum parsing failures surface as *w3s.InvalidEnumError, from the Parse
// helpers directly or wrapped inside a KindDecode error when an unknown
// value appears in a response body.
package w3s
