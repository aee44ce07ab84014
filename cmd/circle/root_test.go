package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/w3sdev/circle-go/errors"
	"github.com/w3sdev/circle-go/observability"
	"github.com/w3sdev/circle-go/w3s"
)

// clearEnv blanks the CIRCLE_* variables an execute test must not inherit
// from the machine.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CIRCLE_API_KEY",
		"CIRCLE_BASE_URL",
		"CIRCLE_USER_TOKEN",
		"CIRCLE_OUTPUT",
		"CIRCLE_TIMEOUT",
		"CIRCLE_OTLP_ENDPOINT",
		"CIRCLE_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circle.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestCommandPath(t *testing.T) {
	if got := commandPath(rootCmd); got != "circle" {
		t.Errorf("expected %q, got %q", "circle", got)
	}
	if got := commandPath(versionCmd); got != "version" {
		t.Errorf("expected %q, got %q", "version", got)
	}
	if got := commandPath(buidlListTransfersCmd); got != "buidl list-transfers" {
		t.Errorf("expected %q, got %q", "buidl list-transfers", got)
	}
	if got := commandPath(userInspectTokenCmd); got != "user inspect-token" {
		t.Errorf("expected %q, got %q", "user inspect-token", got)
	}
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api", w3s.NewAPIError(400, 2, "bad request"), "api"},
		{"transport", w3s.NewTransportError(errors.New("dial tcp: refused")), "transport"},
		{"invalid enum", &w3s.InvalidEnumError{Enum: "blockchain", Value: "BTC"}, "usage"},
		{"validation", apperrors.Validation("wallet-id: is required"), "usage"},
		{"internal", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorType(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: test-key\n")

	out, err := executeCommand(t, "version", "--config", cfg, "--output", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if v, ok := info["version"].(string); !ok || v == "" {
		t.Errorf("expected a version string, got %v", info["version"])
	}
}

func TestVersionCommandTextOutput(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: test-key\n")

	out, err := executeCommand(t, "version", "--config", cfg, "--output", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "{") {
		t.Errorf("expected text output, got:\n%s", out)
	}
	if !strings.Contains(out, "version") {
		t.Errorf("expected a version line, got:\n%s", out)
	}
}

func TestStatusCommand(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: test-key\n")

	out, err := executeCommand(t, "status", "--config", cfg, "--output", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report observability.ServiceHealth
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if report.Status != observability.HealthStatusUp {
		t.Errorf("expected status up, got %q", report.Status)
	}
	if len(report.Components) != 4 {
		t.Errorf("expected 4 components, got %d", len(report.Components))
	}
}

func TestStatusCommandNoAPIKey(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "output: json\n")

	out, err := executeCommand(t, "status", "--config", cfg, "--output", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report observability.ServiceHealth
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if report.Status != observability.HealthStatusDown {
		t.Errorf("expected status down without an API key, got %q", report.Status)
	}
}

func TestUserCommandRequiresToken(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: test-key\n")

	_, err := executeCommand(t, "user", "list-wallets", "--config", cfg, "--output", "json")
	if err == nil {
		t.Fatal("expected an error without a user token")
	}
	if !strings.Contains(err.Error(), "user token is required") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestScreenAddressValidation(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: test-key\n")

	_, err := executeCommand(t, "compliance", "screen-address", "--config", cfg, "--output", "json")
	if err == nil {
		t.Fatal("expected a validation error without flags")
	}
	if !strings.Contains(err.Error(), "address: is required") {
		t.Errorf("unexpected error message: %v", err)
	}
	if !strings.Contains(err.Error(), "chain: is required") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestInvalidOutputRejected(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: test-key\n")

	_, err := executeCommand(t, "version", "--config", cfg, "--output", "yaml")
	if err == nil {
		t.Fatal("expected an error for an unknown output format")
	}
	if !strings.Contains(err.Error(), "output") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestMalformedConfigFile(t *testing.T) {
	clearEnv(t)
	cfg := writeConfigFile(t, "api_key: [unclosed\n")

	_, err := executeCommand(t, "version", "--config", cfg, "--output", "json")
	if err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
	if !strings.Contains(err.Error(), "configuration") {
		t.Errorf("unexpected error message: %v", err)
	}
	if !apperrors.IsAppError(err) {
		t.Error("expected a structured configuration error")
	}
}
