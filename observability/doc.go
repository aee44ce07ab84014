// Package observability wires OpenTelemetry tracing and metrics for the
// circle CLI and client.
//
// The client emits spans and counters through the global otel providers,
// so they stay no-ops until InitTracer and InitMeter install real ones:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("circle"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("circle"))
//	defer mp.Shutdown(ctx)
//
// Command runs are tracked with StartCommand and CommandContext.End, and
// the status command assembles its report from ServiceHealth.
package observability
