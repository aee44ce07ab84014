package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CommandContext tracks one CLI command invocation for telemetry.
type CommandContext struct {
	Command   string
	StartTime time.Time
	Metrics   *Metrics

	span trace.Span
}

// commandContextKey is the context key for CommandContext.
type commandContextKey struct{}

// StartCommand opens a span for a command invocation and stores the
// tracking state in the returned context. If metrics is nil, metric
// recording is silently skipped.
func StartCommand(ctx context.Context, command string, metrics *Metrics) (context.Context, *CommandContext) {
	cc := &CommandContext{
		Command:   command,
		StartTime: time.Now(),
		Metrics:   metrics,
	}

	ctx, span := StartSpan(ctx, "cli.command")
	span.SetAttributes(attribute.String(AttrCommand, command))
	cc.span = span

	return context.WithValue(ctx, commandContextKey{}, cc), cc
}

// CommandFromContext retrieves the CommandContext from context, or nil.
func CommandFromContext(ctx context.Context) *CommandContext {
	if cc, ok := ctx.Value(commandContextKey{}).(*CommandContext); ok {
		return cc
	}
	return nil
}

// End closes the command span and records the outcome.
func (cc *CommandContext) End(ctx context.Context, err error) {
	duration := time.Since(cc.StartTime)

	status := "ok"
	if err != nil {
		status = "error"
		cc.span.RecordError(err)
		cc.span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	cc.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	cc.span.End()

	if cc.Metrics != nil {
		cc.Metrics.RecordCommand(ctx, cc.Command, status, duration)
	}
}

// Duration returns the elapsed time since the command started.
func (cc *CommandContext) Duration() time.Duration {
	return time.Since(cc.StartTime)
}
