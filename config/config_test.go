package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/w3sdev/circle-go/w3s"
)

// clearEnv blanks every CIRCLE_* variable the loader reads so tests are
// not affected by the developer's real environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CIRCLE_API_KEY",
		"CIRCLE_BASE_URL",
		"CIRCLE_USER_TOKEN",
		"CIRCLE_OUTPUT",
		"CIRCLE_TIMEOUT",
		"CIRCLE_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestSettingsApplyDefaults(t *testing.T) {
	t.Run("empty settings get production origin and json output", func(t *testing.T) {
		var s Settings
		s.ApplyDefaults()
		if s.BaseURL != w3s.DefaultBaseURL {
			t.Errorf("expected %s, got %q", w3s.DefaultBaseURL, s.BaseURL)
		}
		if s.Output != "json" {
			t.Errorf("expected output json, got %q", s.Output)
		}
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		s := Settings{BaseURL: "https://api-staging.circle.com", Output: "text"}
		s.ApplyDefaults()
		if s.BaseURL != "https://api-staging.circle.com" {
			t.Errorf("base URL overwritten: %q", s.BaseURL)
		}
		if s.Output != "text" {
			t.Errorf("output overwritten: %q", s.Output)
		}
	})
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
		errMsg  string
	}{
		{"empty settings", Settings{}, false, ""},
		{"valid full settings", Settings{APIKey: "k", BaseURL: "https://api.circle.com", Output: "json", OTLPEndpoint: "localhost:4318"}, false, ""},
		{"bad output", Settings{Output: "yaml"}, true, "output: must be one of"},
		{"bad base url", Settings{BaseURL: "not a url"}, true, "base_url: must be a valid URL"},
		{"bad otlp endpoint", Settings{OTLPEndpoint: "no-port"}, true, "otlp_endpoint: must be a host:port"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSettingsStringRedactsSecrets(t *testing.T) {
	s := Settings{APIKey: "TEST_API_KEY:abc:def", UserToken: "session-token", Output: "json"}
	out := s.String()
	if strings.Contains(out, "TEST_API_KEY") || strings.Contains(out, "session-token") {
		t.Fatalf("secret leaked into %q", out)
	}
	if !strings.Contains(out, "<redacted>") {
		t.Errorf("expected redaction marker in %q", out)
	}

	var empty Settings
	if !strings.Contains(empty.String(), "<unset>") {
		t.Errorf("expected unset marker in %q", empty.String())
	}
}

func TestSettingsClientConfig(t *testing.T) {
	s := Settings{APIKey: "k", BaseURL: "https://api.circle.com", Timeout: 5 * time.Second}
	cfg := s.ClientConfig()
	if cfg.APIKey != "k" {
		t.Errorf("expected api key passed through, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://api.circle.com" {
		t.Errorf("expected base URL passed through, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout passed through, got %v", cfg.Timeout)
	}
}

func TestLoadWithYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "circle.yml")

	yamlContent := `
api_key: TEST_API_KEY:abc123:def456
base_url: https://api-staging.circle.com
output: text
timeout: 5s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	s, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, ".env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.APIKey != "TEST_API_KEY:abc123:def456" {
		t.Errorf("unexpected api key %q", s.APIKey)
	}
	if s.BaseURL != "https://api-staging.circle.com" {
		t.Errorf("unexpected base URL %q", s.BaseURL)
	}
	if s.Output != "text" {
		t.Errorf("unexpected output %q", s.Output)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout %v", s.Timeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	// With no config file found, Load should still succeed with defaults.
	s, err := Load(WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(filepath.Join(dir, ".env")))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
	if s.BaseURL != w3s.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", s.BaseURL)
	}
	if s.APIKey != "" {
		t.Errorf("expected empty api key, got %q", s.APIKey)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "circle.yml")

	yamlContent := `
base_url: https://api-staging.circle.com
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("CIRCLE_BASE_URL", "https://localhost:8080")

	s, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, ".env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.BaseURL != "https://localhost:8080" {
		t.Errorf("expected environment to win, got %q", s.BaseURL)
	}
}

func TestLoadFromEnvironmentOnly(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("CIRCLE_API_KEY", "TEST_API_KEY:env:key")
	t.Setenv("CIRCLE_TIMEOUT", "45s")
	t.Setenv("CIRCLE_USER_TOKEN", "tok-1")

	s, err := Load(WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(filepath.Join(dir, ".env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.APIKey != "TEST_API_KEY:env:key" {
		t.Errorf("unexpected api key %q", s.APIKey)
	}
	if s.Timeout != 45*time.Second {
		t.Errorf("unexpected timeout %v", s.Timeout)
	}
	if s.UserToken != "tok-1" {
		t.Errorf("unexpected user token %q", s.UserToken)
	}
}

type mockFS struct {
	files map[string]bool
	home  string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(path string) error { return nil }

func (m *mockFS) UserHomeDir() (string, error) { return m.home, nil }

func TestResolverWithMockFS(t *testing.T) {
	t.Run("explicit paths win", func(t *testing.T) {
		resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./circle.yml": true}}}
		files := resolver.ResolveFiles(LoaderConfig{ConfigFile: "/etc/circle.yml", EnvFile: "/etc/.env"})
		if files.ConfigFile != "/etc/circle.yml" {
			t.Errorf("expected explicit config file, got %q", files.ConfigFile)
		}
		if files.EnvFile != "/etc/.env" {
			t.Errorf("expected explicit env file, got %q", files.EnvFile)
		}
	})

	t.Run("finds circle.yml in working directory", func(t *testing.T) {
		fs := &mockFS{files: map[string]bool{"./circle.yml": true}, home: "/home/u"}
		resolver := &Resolver{FileSystem: fs}
		files := resolver.ResolveFiles(LoaderConfig{})
		if files.ConfigFile != "./circle.yml" {
			t.Errorf("expected ./circle.yml, got %q", files.ConfigFile)
		}
	})

	t.Run("falls back to home config", func(t *testing.T) {
		home := filepath.Join("/home", "u")
		fs := &mockFS{
			files: map[string]bool{filepath.Join(home, ".circle", "config.yml"): true},
			home:  home,
		}
		resolver := &Resolver{FileSystem: fs}
		files := resolver.ResolveFiles(LoaderConfig{})
		if files.ConfigFile != filepath.Join(home, ".circle", "config.yml") {
			t.Errorf("expected home config, got %q", files.ConfigFile)
		}
	})

	t.Run("finds env file in home directory", func(t *testing.T) {
		home := filepath.Join("/home", "u")
		fs := &mockFS{
			files: map[string]bool{filepath.Join(home, ".circle", ".env"): true},
			home:  home,
		}
		resolver := &Resolver{FileSystem: fs}
		files := resolver.ResolveFiles(LoaderConfig{})
		if files.EnvFile != filepath.Join(home, ".circle", ".env") {
			t.Errorf("expected home env file, got %q", files.EnvFile)
		}
	})
}

func TestWithFileSystemOption(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
}

func TestWithConfigFileOption(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/circle.yml")(&lc)
	if lc.ConfigFile != "/path/to/circle.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
}

func TestWithEnvFileOption(t *testing.T) {
	var lc LoaderConfig
	WithEnvFile("/path/to/.env")(&lc)
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}
