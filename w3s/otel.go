package w3s

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// scopeName identifies this instrumentation scope to OpenTelemetry.
const scopeName = "github.com/w3sdev/circle-go/w3s"

// instruments bundles the tracer and metric instruments used per call.
// All of them resolve through the global otel providers, so everything here
// is a no-op until an application installs real providers.
type instruments struct {
	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newInstruments() *instruments {
	in := &instruments{tracer: otel.Tracer(scopeName)}

	meter := otel.Meter(scopeName)
	if counter, err := meter.Int64Counter("circle.client.requests",
		metric.WithDescription("Completed API calls by method, path and status."),
	); err == nil {
		in.requests = counter
	}
	if hist, err := meter.Float64Histogram("circle.client.request.duration",
		metric.WithDescription("API call duration by method and path."),
		metric.WithUnit("s"),
	); err == nil {
		in.duration = hist
	}

	return in
}

// start opens a span for one API call.
func (in *instruments) start(ctx context.Context, req Request, requestID string) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, "circle.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.Path),
			attribute.String("circle.request_id", requestID),
		),
	)
}

// end records the call outcome on the span and metric instruments.
func (in *instruments) end(ctx context.Context, span trace.Span, status int, elapsed time.Duration, err error) {
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	attrs := metric.WithAttributes(
		attribute.Int("http.response.status_code", status),
	)
	if in.requests != nil {
		in.requests.Add(ctx, 1, attrs)
	}
	if in.duration != nil {
		in.duration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
