package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/buidl"
	"github.com/w3sdev/circle-go/compliance"
	"github.com/w3sdev/circle-go/config"
	"github.com/w3sdev/circle-go/developer"
	"github.com/w3sdev/circle-go/errors"
	"github.com/w3sdev/circle-go/logger"
	"github.com/w3sdev/circle-go/observability"
	"github.com/w3sdev/circle-go/user"
	"github.com/w3sdev/circle-go/w3s"
)

const (
	configFlagName    = "config"
	apiKeyFlagName    = "api-key"
	baseURLFlagName   = "base-url"
	userTokenFlagName = "user-token"
	outputFlagName    = "output"
	timeoutFlagName   = "timeout"
	otlpFlagName      = "otlp-endpoint"
)

// settings holds the resolved configuration for the current invocation.
var settings *config.Settings

// metrics is non-nil once telemetry is enabled.
var metrics *observability.Metrics

// telemetryShutdown collects provider shutdowns to run before exit.
var telemetryShutdown []func(context.Context) error

var rootCmd = &cobra.Command{
	Use:   "circle",
	Short: "Interact with the Circle Web3 Services API",
	Long: `circle talks to the Circle Web3 Services REST API: Buidl wallets, the
Compliance Engine, developer-controlled and user-controlled wallets.

Credentials and defaults are read from a circle.yml config file, a .env
file and CIRCLE_* environment variables, lowest to highest precedence,
with flags overriding them all.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initSettings(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(configFlagName, "", "Path to a config file (default: ./circle.yml, ~/.circle/config.yml)")
	pf.String(apiKeyFlagName, "", "Circle API key (env: CIRCLE_API_KEY)")
	pf.String(baseURLFlagName, "", "API origin (env: CIRCLE_BASE_URL)")
	pf.String(userTokenFlagName, "", "Session token for user-controlled commands (env: CIRCLE_USER_TOKEN)")
	pf.String(outputFlagName, "", "Output format: json or text (env: CIRCLE_OUTPUT)")
	pf.Duration(timeoutFlagName, 0, "Request timeout (env: CIRCLE_TIMEOUT)")
	pf.String(otlpFlagName, "", "OTLP endpoint for traces and metrics (env: CIRCLE_OTLP_ENDPOINT)")
}

// Execute runs the CLI, flushes telemetry and exits non-zero on error.
func Execute() {
	ctx := context.Background()
	err := rootCmd.ExecuteContext(ctx)

	if len(telemetryShutdown) > 0 {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		for _, shutdown := range telemetryShutdown {
			if sderr := shutdown(shutdownCtx); sderr != nil {
				logger.Warn("telemetry shutdown failed", logger.Fields("error", sderr.Error()))
			}
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initSettings resolves the configuration for this invocation: config file
// and environment first, explicit flags on top.
func initSettings(cmd *cobra.Command) error {
	var opts []config.LoaderOption
	if path, _ := cmd.Flags().GetString(configFlagName); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	} else if path := os.Getenv("CIRCLE_CONFIG"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	s, err := config.Load(opts...)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "could not load configuration").WithCause(err)
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString(apiKeyFlagName); v != "" {
		s.APIKey = v
	}
	if v, _ := flags.GetString(baseURLFlagName); v != "" {
		s.BaseURL = v
	}
	if v, _ := flags.GetString(userTokenFlagName); v != "" {
		s.UserToken = v
	}
	if v, _ := flags.GetString(outputFlagName); v != "" {
		s.Output = v
	}
	if v, _ := flags.GetDuration(timeoutFlagName); v > 0 {
		s.Timeout = v
	}
	if v, _ := flags.GetString(otlpFlagName); v != "" {
		s.OTLPEndpoint = v
	}

	if err := s.Validate(); err != nil {
		return err
	}
	settings = s

	logger.SetGlobalLogger(logger.NewFromEnv())

	return initTelemetry(cmd.Context())
}

// initTelemetry installs the OTLP providers when an endpoint is configured.
// Without one, the client's spans and counters stay no-ops.
func initTelemetry(ctx context.Context) error {
	if settings.OTLPEndpoint == "" {
		return nil
	}

	tracerCfg := observability.DefaultTracerConfig("circle")
	tracerCfg.Endpoint = settings.OTLPEndpoint
	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	telemetryShutdown = append(telemetryShutdown, tp.Shutdown)

	meterCfg := observability.DefaultMeterConfig("circle")
	meterCfg.Endpoint = settings.OTLPEndpoint
	mp, err := observability.InitMeter(ctx, meterCfg)
	if err != nil {
		return fmt.Errorf("init meter: %w", err)
	}
	telemetryShutdown = append(telemetryShutdown, mp.Shutdown)

	metrics, err = observability.NewMetrics(observability.Meter("circle"))
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}

	return nil
}

// runTracked wraps a command action with the per-command span and metrics.
func runTracked(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx, cc := observability.StartCommand(cmd.Context(), commandPath(cmd), metrics)
	err := fn(ctx)
	cc.End(ctx, err)
	if err != nil && metrics != nil {
		metrics.RecordError(ctx, errorType(err), cc.Command)
	}
	return err
}

// commandPath returns the command path without the binary name, for
// example "user list-wallets".
func commandPath(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), rootCmd.Name()+" ")
}

// errorType classifies an error for the error counter.
func errorType(err error) string {
	switch {
	case w3s.IsAPI(err):
		return "api"
	case w3s.IsTransport(err):
		return "transport"
	case w3s.IsInvalidEnum(err), errors.IsAppError(err):
		return "usage"
	default:
		return "internal"
	}
}

// newCore builds the API client from the resolved settings.
func newCore() (*w3s.Client, error) {
	cfg := settings.ClientConfig()
	cfg.Logger = logger.GetGlobalLogger()
	return w3s.New(cfg)
}

func newBuidlClient() (*buidl.Client, error) {
	core, err := newCore()
	if err != nil {
		return nil, err
	}
	return buidl.Wrap(core), nil
}

func newComplianceClient() (*compliance.Client, error) {
	core, err := newCore()
	if err != nil {
		return nil, err
	}
	return compliance.Wrap(core), nil
}

func newDeveloperClient() (*developer.Client, error) {
	core, err := newCore()
	if err != nil {
		return nil, err
	}
	return developer.Wrap(core), nil
}

func newUserClient() (*user.Client, error) {
	core, err := newCore()
	if err != nil {
		return nil, err
	}
	return user.Wrap(core), nil
}

// requireUserToken returns the session token user-controlled commands act
// under.
func requireUserToken() (string, error) {
	if settings.UserToken == "" {
		return "", errors.MissingCredential("user token", fmt.Sprintf("set --%s or CIRCLE_USER_TOKEN", userTokenFlagName))
	}
	return settings.UserToken, nil
}
