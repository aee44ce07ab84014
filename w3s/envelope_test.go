package w3s

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodeEnvelope_Success(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`{"data":{"id":"w1","state":"LIVE"}}`)}

	wallet, err := decodeEnvelope[testWallet](resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wallet.ID != "w1" || wallet.State != "LIVE" {
		t.Errorf("expected w1/LIVE, got %s/%s", wallet.ID, wallet.State)
	}
}

func TestDecodeEnvelope_APIError(t *testing.T) {
	resp := &Response{StatusCode: 400, Body: []byte(`{"code":400,"message":"bad request"}`)}

	_, err := decodeEnvelope[testWallet](resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsAPI(err) {
		t.Fatalf("expected api error, got %v", err)
	}
	code, ok := APICode(err)
	if !ok || code != 400 {
		t.Errorf("expected code 400, got %d", code)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatal("expected *Error")
	}
	if apiErr.Message != "bad request" {
		t.Errorf("expected message %q, got %q", "bad request", apiErr.Message)
	}
	if apiErr.HTTPStatus != 400 {
		t.Errorf("expected HTTP status 400, got %d", apiErr.HTTPStatus)
	}
}

func TestDecodeEnvelope_APICodeDiffersFromHTTPStatus(t *testing.T) {
	resp := &Response{StatusCode: 400, Body: []byte(`{"code":155104,"message":"invalid blockchain"}`)}

	_, err := decodeEnvelope[testWallet](resp)
	code, ok := APICode(err)
	if !ok || code != 155104 {
		t.Errorf("expected Circle code 155104, got %d", code)
	}
}

func TestDecodeEnvelope_MissingDataKey(t *testing.T) {
	// 2xx body without the data envelope is a schema mismatch.
	resp := &Response{StatusCode: 200, Body: []byte(`{"id":"w1"}`)}

	_, err := decodeEnvelope[testWallet](resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestDecodeEnvelope_DataEnvelopeOnErrorStatus(t *testing.T) {
	// Valid JSON that lacks code/message on a non-2xx status is a schema
	// mismatch, not an API error.
	resp := &Response{StatusCode: 404, Body: []byte(`{"data":{"id":"w1"}}`)}

	_, err := decodeEnvelope[testWallet](resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
	if IsAPI(err) {
		t.Errorf("schema mismatch must not be classified as api error: %v", err)
	}
}

func TestDecodeEnvelope_NonJSONBody(t *testing.T) {
	resp := &Response{StatusCode: 502, Body: []byte("<html>Bad Gateway</html>")}

	_, err := decodeEnvelope[testWallet](resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestDecodeEnvelope_EmptyBody(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: nil}

	_, err := decodeEnvelope[testWallet](resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestDecodeEnvelope_MalformedJSON(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`{"data":{`)}

	_, err := decodeEnvelope[testWallet](resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error for truncated body, got %v", err)
	}
}

func TestGet_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":156001,"message":"wallet not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := Get[testWallet](context.Background(), c, "/v1/w3s/wallets/missing")
	if err == nil {
		t.Fatal("expected error")
	}
	code, ok := APICode(err)
	if !ok || code != 156001 {
		t.Errorf("expected code 156001, got %d", code)
	}
}

func TestPut_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		w.Write(envelope(testWallet{ID: "w1", State: "FROZEN"}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := Put[testWallet](context.Background(), c, "/v1/w3s/wallets/w1", map[string]string{"name": "cold"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != "FROZEN" {
		t.Errorf("expected FROZEN, got %s", out.State)
	}
}
