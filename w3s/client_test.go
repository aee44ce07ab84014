package w3s

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type testWallet struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

func envelope(v any) []byte {
	data, _ := json.Marshal(map[string]any{"data": v})
	return data
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestDo_AuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected Bearer test-key, got %q", got)
		}
		if got := r.Header.Get("X-Request-Id"); got == "" {
			t.Error("expected X-Request-Id to be set")
		} else if _, err := uuid.Parse(got); err != nil {
			t.Errorf("expected X-Request-Id to be a UUID, got %q", got)
		}
		if got := r.Header.Get("X-User-Token"); got != "" {
			t.Errorf("expected no X-User-Token, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "circle-go/") {
			t.Errorf("expected circle-go User-Agent, got %q", got)
		}
		w.Write(envelope(testWallet{ID: "w1"}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := Get[testWallet](context.Background(), c, "/v1/w3s/wallets/w1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_FreshRequestIDPerCall(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-Id"))
		w.Write(envelope(testWallet{ID: "w1"}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	for i := 0; i < 2; i++ {
		if _, err := Get[testWallet](context.Background(), c, "/v1/w3s/wallets/w1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(seen))
	}
	if seen[0] == seen[1] {
		t.Errorf("expected fresh X-Request-Id per call, got %q twice", seen[0])
	}
}

func TestDo_UserToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-User-Token"); got != "user-jwt" {
			t.Errorf("expected X-User-Token user-jwt, got %q", got)
		}
		w.Write(envelope(testWallet{ID: "w1"}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := Get[testWallet](context.Background(), c, "/v1/w3s/wallets", WithUserToken("user-jwt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_PostBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", ct)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "treasury" {
			t.Errorf("expected name=treasury, got %q", body["name"])
		}
		w.Write(envelope(testWallet{ID: "w2"}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := Post[testWallet](context.Background(), c, "/v1/w3s/wallets", map[string]string{"name": "treasury"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != "w2" {
		t.Errorf("expected w2, got %s", out.ID)
	}
}

func TestDo_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("blockchain"); got != "ETH" {
			t.Errorf("expected blockchain=ETH, got %q", got)
		}
		if got := r.URL.Query().Get("pageSize"); got != "10" {
			t.Errorf("expected pageSize=10, got %q", got)
		}
		w.Write(envelope([]testWallet{{ID: "w1"}}))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := Get[[]testWallet](context.Background(), c, "/v1/w3s/wallets",
		WithQuery(map[string]string{"blockchain": "ETH", "pageSize": "10"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("expected 1 wallet, got %d", len(out))
	}
}

func TestDo_BaseURLJoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/w3s/wallets" {
			t.Errorf("expected /v1/w3s/wallets, got %s", r.URL.Path)
		}
		w.Write(envelope([]testWallet{}))
	}))
	defer srv.Close()

	// Trailing slash on the base URL must not produce a double slash.
	c := newTestClient(t, srv.URL+"/")
	if _, err := Get[[]testWallet](context.Background(), c, "/v1/w3s/wallets"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := Get[testWallet](context.Background(), c, "/v1/w3s/wallets/w1")
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error, got %v", err)
	}
	if IsAPI(err) || IsDecode(err) {
		t.Errorf("connection failure must not be classified as api/decode: %v", err)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get[testWallet](ctx, c, "/v1/w3s/wallets/w1")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestClient_StringRedactsAPIKey(t *testing.T) {
	c := newTestClient(t, "https://api.circle.com")
	s := c.String()
	if strings.Contains(s, "test-key") {
		t.Errorf("client string leaks the API key: %s", s)
	}
	if !strings.Contains(s, "<redacted>") {
		t.Errorf("expected <redacted> marker in %s", s)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{APIKey: "k"}
	cfg.ApplyDefaults()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected %s, got %s", defaultTimeout, cfg.Timeout)
	}
	if !strings.HasPrefix(cfg.UserAgent, "circle-go/") {
		t.Errorf("expected circle-go User-Agent, got %s", cfg.UserAgent)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://api.circle.com", APIKey: "k", Timeout: defaultTimeout}, false},
		{"missing api key", Config{BaseURL: "https://api.circle.com", Timeout: defaultTimeout}, true},
		{"bad base url", Config{BaseURL: "not a url", APIKey: "k", Timeout: defaultTimeout}, true},
		{"zero timeout", Config{BaseURL: "https://api.circle.com", APIKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewIdempotencyKey(t *testing.T) {
	k1 := NewIdempotencyKey()
	k2 := NewIdempotencyKey()

	if _, err := uuid.Parse(k1); err != nil {
		t.Errorf("expected UUID, got %q: %v", k1, err)
	}
	if k1 == k2 {
		t.Errorf("expected unique keys, got %q twice", k1)
	}
}
