package w3s

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/w3sdev/circle-go/logger"
	"github.com/w3sdev/circle-go/version"
)

const (
	// DefaultBaseURL is the production Circle API origin.
	DefaultBaseURL = "https://api.circle.com"

	defaultTimeout = 30 * time.Second
)

// Config configures the Web3 Services client.
type Config struct {
	// BaseURL is the API origin prepended to all request paths.
	// Defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// APIKey authenticates every request via Authorization: Bearer.
	// Treated as a secret: it never appears in logs or in the client's
	// String representation.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// Timeout bounds each request end to end. Defaults to 30s so a call
	// fails fast instead of hanging on an unresponsive host.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// HTTPClient overrides the underlying transport. When nil a client
	// with Timeout applied is constructed.
	HTTPClient *http.Client `yaml:"-" mapstructure:"-"`

	// Logger receives per-request debug logs. Nil disables logging.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = "circle-go/" + version.Short()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("w3s: api key is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("w3s: timeout must be positive")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("w3s: invalid base URL %q", c.BaseURL)
	}
	return nil
}
