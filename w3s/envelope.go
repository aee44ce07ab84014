package w3s

import (
	"encoding/json"
	"fmt"
)

// dataEnvelope is the wrapper every 2xx response uses.
type dataEnvelope[T any] struct {
	Data *T `json:"data"`
}

// errorEnvelope is the wrapper every non-2xx response uses. Pointer fields
// distinguish a missing key from a zero value, so a wrong-shape error body
// is detected instead of silently producing code 0.
type errorEnvelope struct {
	Code    *int    `json:"code"`
	Message *string `json:"message"`
}

// decodeEnvelope interprets a completed response as either the typed
// success payload or a structured error. It is a pure function of
// (status, body):
//
//   - body not JSON at all → KindTransport (proxies and load balancers
//     inject HTML error pages; that is an infrastructure failure, not an
//     API answer)
//   - 2xx with {"data": T} → T
//   - 2xx with any other JSON shape → KindDecode
//   - non-2xx with {"code", "message"} → KindAPI
//   - non-2xx with any other JSON shape → KindDecode
func decodeEnvelope[T any](resp *Response) (T, error) {
	var zero T

	if !json.Valid(resp.Body) {
		return zero, &Error{
			Kind:       KindTransport,
			HTTPStatus: resp.StatusCode,
			Message:    "empty or non-JSON response body",
			Body:       bodySnippet(resp.Body),
		}
	}

	if resp.IsSuccess() {
		var env dataEnvelope[T]
		if err := json.Unmarshal(resp.Body, &env); err != nil {
			return zero, NewDecodeError(resp.StatusCode, resp.Body, err)
		}
		if env.Data == nil {
			return zero, NewDecodeError(resp.StatusCode, resp.Body, fmt.Errorf(`missing "data" envelope`))
		}
		return *env.Data, nil
	}

	var env errorEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return zero, NewDecodeError(resp.StatusCode, resp.Body, err)
	}
	if env.Code == nil || env.Message == nil {
		return zero, NewDecodeError(resp.StatusCode, resp.Body, fmt.Errorf(`missing "code" or "message" in error envelope`))
	}
	return zero, NewAPIError(resp.StatusCode, *env.Code, *env.Message)
}
