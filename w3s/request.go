package w3s

// Request describes one outbound API call.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT).
	Method string
	// Path is appended to the client's BaseURL (e.g. "/v1/w3s/wallets").
	Path string
	// Query are URL query parameters. Absent keys are simply not sent;
	// list filters encode only the fields their caller set.
	Query map[string]string
	// Body is JSON-encoded when non-nil.
	Body any
	// UserToken, when set, is sent as X-User-Token to scope the call to an
	// authenticated end-user.
	UserToken string
}

// Response is the raw result of an API call before envelope decoding.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
	// RequestID is the X-Request-Id that was sent with the call, kept for
	// correlating failures with server-side traces.
	RequestID string
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
