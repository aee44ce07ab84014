package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/observability"
	"github.com/w3sdev/circle-go/user"
	"github.com/w3sdev/circle-go/version"
	"github.com/w3sdev/circle-go/w3s"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the local configuration and report readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			checks := []observability.HealthChecker{
				observability.CheckFunc(checkCredentials),
				observability.CheckFunc(checkEndpoint),
				observability.CheckFunc(checkUserToken),
				observability.CheckFunc(checkTelemetry),
			}

			report := observability.NewServiceHealth("circle", version.Short())
			for _, c := range checks {
				report.AddComponent(c.CheckHealth(ctx))
			}
			return printResult(cmd, report)
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func checkCredentials(ctx context.Context) observability.Health {
	h := observability.Health{Name: "credentials", Status: observability.HealthStatusUp}
	if settings.APIKey == "" {
		h.Status = observability.HealthStatusDown
		h.Message = fmt.Sprintf("no API key: set --%s or CIRCLE_API_KEY", apiKeyFlagName)
	}
	return h
}

func checkEndpoint(ctx context.Context) observability.Health {
	h := observability.Health{
		Name:    "endpoint",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"url": settings.BaseURL},
	}
	if settings.BaseURL != w3s.DefaultBaseURL {
		h.Message = "non-default API origin"
	}
	return h
}

func checkUserToken(ctx context.Context) observability.Health {
	h := observability.Health{Name: "user_token", Status: observability.HealthStatusUp}
	if settings.UserToken == "" {
		h.Message = "not configured; user-controlled commands will fail"
		return h
	}
	info, err := user.InspectToken(settings.UserToken)
	if err != nil {
		h.Status = observability.HealthStatusDegraded
		h.Message = "token is not a valid JWT"
		return h
	}
	if info.Expired {
		h.Status = observability.HealthStatusDegraded
		h.Message = "token expired"
	}
	if info.UserID != "" {
		h.Details = map[string]string{"user_id": info.UserID}
	}
	return h
}

func checkTelemetry(ctx context.Context) observability.Health {
	h := observability.Health{Name: "telemetry", Status: observability.HealthStatusUp}
	if settings.OTLPEndpoint == "" {
		h.Message = "disabled; set --otlp-endpoint or CIRCLE_OTLP_ENDPOINT to export"
		return h
	}
	h.Details = map[string]string{"endpoint": settings.OTLPEndpoint}
	return h
}
