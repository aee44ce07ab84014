package config

import (
	"fmt"
	"time"

	"github.com/w3sdev/circle-go/validation"
	"github.com/w3sdev/circle-go/w3s"
)

// Settings holds everything the circle CLI needs to reach the API.
// Values come from a config file, CIRCLE_* environment variables and an
// optional .env file; the command layer lays flags on top.
type Settings struct {
	// APIKey authenticates against the Circle API. Treated as a secret:
	// it is never logged and String renders it redacted.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// BaseURL overrides the production API origin.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// UserToken is the session token sent as X-User-Token on
	// user-controlled calls. Also a secret.
	UserToken string `yaml:"user_token" mapstructure:"user_token"`

	// Output selects how command results are rendered.
	Output string `yaml:"output" mapstructure:"output" validate:"omitempty,oneof=json text"`

	// Timeout bounds each API call. Zero means the client default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// OTLPEndpoint enables trace and metric export when set (host:port).
	OTLPEndpoint string `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint" validate:"omitempty,hostname_port"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (s *Settings) ApplyDefaults() {
	if s.BaseURL == "" {
		s.BaseURL = w3s.DefaultBaseURL
	}
	if s.Output == "" {
		s.Output = "json"
	}
}

// Validate checks the loaded settings. The API key is deliberately not
// required here: commands that never call the API run without one.
func (s *Settings) Validate() error {
	return validation.Validate(s)
}

// ClientConfig converts the settings into a client configuration.
func (s *Settings) ClientConfig() w3s.Config {
	return w3s.Config{
		BaseURL: s.BaseURL,
		APIKey:  s.APIKey,
		Timeout: s.Timeout,
	}
}

// String renders the settings for debug output with secrets redacted.
func (s *Settings) String() string {
	return fmt.Sprintf("Settings{APIKey: %s, BaseURL: %s, UserToken: %s, Output: %s, Timeout: %s, OTLPEndpoint: %s}",
		redact(s.APIKey), s.BaseURL, redact(s.UserToken), s.Output, s.Timeout, s.OTLPEndpoint)
}

func redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	return "<redacted>"
}
