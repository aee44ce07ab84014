package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("circle")

	if cfg.ServiceName != "circle" {
		t.Errorf("expected ServiceName 'circle', got %s", cfg.ServiceName)
	}
	if cfg.ServiceVersion == "" {
		t.Error("expected ServiceVersion to be filled from build info")
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("circle")

	if cfg.ServiceName != "circle" {
		t.Errorf("expected ServiceName 'circle', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordCommand(ctx, "user list-wallets", "ok", 100*time.Millisecond)
	metrics.RecordCommand(ctx, "user list-wallets", "error", 50*time.Millisecond)
	metrics.RecordError(ctx, "api", "user list-wallets")
}

func TestStartCommand(t *testing.T) {
	ctx, cc := StartCommand(context.Background(), "developer get-wallet", nil)

	if cc.Command != "developer get-wallet" {
		t.Errorf("expected Command 'developer get-wallet', got %s", cc.Command)
	}
	if cc.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}

	retrieved := CommandFromContext(ctx)
	if retrieved == nil {
		t.Fatal("expected command context from context")
	}
	if retrieved.Command != cc.Command {
		t.Errorf("expected Command %s, got %s", cc.Command, retrieved.Command)
	}

	cc.End(ctx, nil)
}

func TestCommandFromContext_NotSet(t *testing.T) {
	retrieved := CommandFromContext(context.Background())
	if retrieved != nil {
		t.Error("expected nil when command context not set")
	}
}

func TestCommandContext_Duration(t *testing.T) {
	_, cc := StartCommand(context.Background(), "version", nil)
	cc.StartTime = time.Now().Add(-50 * time.Millisecond)

	duration := cc.Duration()
	if duration < 45*time.Millisecond || duration > 200*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", duration)
	}
}

func TestCommandContext_EndWithError(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, _ := NewMetrics(meter)

	ctx, cc := StartCommand(context.Background(), "user create-transfer", metrics)
	cc.End(ctx, fmt.Errorf("something failed"))
}

func TestCommandContext_EndRecordsSpan(t *testing.T) {
	prev := otel.GetTracerProvider()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() {
		otel.SetTracerProvider(prev)
		tp.Shutdown(context.Background())
	}()
	otel.SetTracerProvider(tp)

	ctx, cc := StartCommand(context.Background(), "user list-wallets", nil)
	cc.End(ctx, nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "cli.command" {
		t.Errorf("expected span name 'cli.command', got %q", spans[0].Name)
	}

	var status, command string
	for _, attr := range spans[0].Attributes {
		switch string(attr.Key) {
		case AttrStatus:
			status = attr.Value.AsString()
		case AttrCommand:
			command = attr.Value.AsString()
		}
	}
	if status != "ok" {
		t.Errorf("expected status attribute 'ok', got %q", status)
	}
	if command != "user list-wallets" {
		t.Errorf("expected command attribute, got %q", command)
	}
}

func TestNewServiceHealth(t *testing.T) {
	sh := NewServiceHealth("circle", "1.0.0")

	if sh.Service != "circle" {
		t.Errorf("expected Service 'circle', got %s", sh.Service)
	}
	if sh.Version != "1.0.0" {
		t.Errorf("expected Version '1.0.0', got %s", sh.Version)
	}
	if sh.Status != HealthStatusUp {
		t.Errorf("expected Status 'up', got %s", sh.Status)
	}
}

func TestServiceHealth_AddComponent(t *testing.T) {
	sh := NewServiceHealth("circle", "1.0.0")

	sh.AddComponent(Health{Name: "credentials", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("expected status 'up' after healthy component, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "config", Status: HealthStatusDegraded, Message: "no config file found"})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected status 'degraded', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "telemetry", Status: HealthStatusDown, Message: "exporter unreachable"})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected status 'down', got %s", sh.Status)
	}

	if len(sh.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(sh.Components))
	}
}

func TestServiceHealth_DegradedDoesNotOverrideDown(t *testing.T) {
	sh := NewServiceHealth("circle", "1.0.0")
	sh.AddComponent(Health{Name: "a", Status: HealthStatusDown})
	sh.AddComponent(Health{Name: "b", Status: HealthStatusDegraded})

	if sh.Status != HealthStatusDown {
		t.Errorf("expected 'down' not overridden by 'degraded', got %s", sh.Status)
	}
}

func TestHealthStatusConstants(t *testing.T) {
	if HealthStatusUp != "up" {
		t.Errorf("expected 'up', got %q", HealthStatusUp)
	}
	if HealthStatusDown != "down" {
		t.Errorf("expected 'down', got %q", HealthStatusDown)
	}
	if HealthStatusDegraded != "degraded" {
		t.Errorf("expected 'degraded', got %q", HealthStatusDegraded)
	}
}

func TestHealthDetails(t *testing.T) {
	h := Health{
		Name:    "endpoint",
		Status:  HealthStatusUp,
		Message: "configured",
		Details: map[string]string{"url": "https://api.circle.com"},
	}
	if h.Details["url"] != "https://api.circle.com" {
		t.Error("expected Details to contain url")
	}
}

func TestCheckFunc(t *testing.T) {
	check := CheckFunc(func(ctx context.Context) Health {
		return Health{Name: "credentials", Status: HealthStatusDown, Message: "no api key"}
	})

	h := check.CheckHealth(context.Background())
	if h.Name != "credentials" {
		t.Errorf("expected name 'credentials', got %q", h.Name)
	}
	if h.Status != HealthStatusDown {
		t.Errorf("expected status 'down', got %q", h.Status)
	}
}

func TestTracer(t *testing.T) {
	tracer := Tracer("test-tracer")
	if tracer == nil {
		t.Fatal("expected non-nil tracer")
	}
}

func TestMeter(t *testing.T) {
	meter := Meter("test-meter")
	if meter == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()
	ctx, span := StartSpan(ctx, "test-operation")
	defer span.End()

	if span == nil {
		t.Fatal("expected non-nil span")
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestSpanFromContext(t *testing.T) {
	ctx := context.Background()
	span := SpanFromContext(ctx)
	if span == nil {
		t.Fatal("expected non-nil span (noop)")
	}

	ctx, s := StartSpan(ctx, "test")
	defer s.End()
	got := SpanFromContext(ctx)
	if got == nil {
		t.Fatal("expected non-nil span from context")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	// Use an SDK tracer so span.IsRecording() returns true.
	prev := otel.GetTracerProvider()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() {
		otel.SetTracerProvider(prev)
		tp.Shutdown(context.Background())
	}()
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	defer span.End()

	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})

	// Unsupported type is ignored.
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
}

func TestSetSpanError(t *testing.T) {
	prev := otel.GetTracerProvider()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() {
		otel.SetTracerProvider(prev)
		tp.Shutdown(context.Background())
	}()
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-error")
	defer span.End()

	SetSpanError(ctx, fmt.Errorf("test error"))
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanError(ctx, fmt.Errorf("no span error"))
}

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
	}{
		{"always sample", 1.0},
		{"never sample", 0.0},
		{"ratio based", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := TracerConfig{
				ServiceName:    "circle-test",
				ServiceVersion: "0.0.0",
				Endpoint:       "localhost:4318",
				Insecure:       true,
				SampleRate:     tc.sampleRate,
			}
			tp, err := InitTracer(context.Background(), cfg)
			if err != nil {
				t.Fatalf("InitTracer failed: %v", err)
			}
			tp.Shutdown(context.Background())
		})
	}
}

func TestInitTracerSecure(t *testing.T) {
	cfg := TracerConfig{
		ServiceName:    "circle-test",
		ServiceVersion: "0.0.0",
		Endpoint:       "localhost:4318",
		Insecure:       false,
		SampleRate:     1.0,
	}

	tp, err := InitTracer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("InitTracer failed: %v", err)
	}
	tp.Shutdown(context.Background())
}

func TestInitMeter(t *testing.T) {
	cfg := MeterConfig{
		ServiceName:    "circle-test",
		ServiceVersion: "0.0.0",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}

	mp, err := InitMeter(context.Background(), cfg)
	if err != nil {
		t.Fatalf("InitMeter failed: %v", err)
	}
	mp.Shutdown(context.Background())
}

func TestInitMeterNoInterval(t *testing.T) {
	cfg := MeterConfig{
		ServiceName:    "circle-test",
		ServiceVersion: "0.0.0",
		Endpoint:       "localhost:4318",
		Insecure:       false,
		Interval:       0,
	}

	mp, err := InitMeter(context.Background(), cfg)
	if err != nil {
		t.Fatalf("InitMeter failed: %v", err)
	}
	mp.Shutdown(context.Background())
}
