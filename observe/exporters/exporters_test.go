package exporters

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

// TestExporter_InvalidName verifies unknown exporter names return ErrUnknownExporter.
func TestExporter_InvalidName(t *testing.T) {
	if _, err := NewTracingExporter(context.Background(), "invalid", nil); !errors.Is(err, ErrUnknownExporter) {
		t.Errorf("tracing error = %v, want %v", err, ErrUnknownExporter)
	}
	if _, err := NewMetricsReader(context.Background(), "badvalue", nil); !errors.Is(err, ErrUnknownExporter) {
		t.Errorf("metrics error = %v, want %v", err, ErrUnknownExporter)
	}
}

// TestExporter_StdoutTracing verifies stdout tracing exporter uses the writer.
func TestExporter_StdoutTracing(t *testing.T) {
	var buf bytes.Buffer
	exp, err := NewTracingExporter(context.Background(), "stdout", &buf)
	if err != nil {
		t.Fatalf("failed to create stdout tracing exporter: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
	_ = exp.Shutdown(context.Background())
}

// TestExporter_StdoutMetrics verifies stdout metrics reader.
func TestExporter_StdoutMetrics(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "stdout", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to create stdout metrics reader: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

// TestExporter_OtlpMissingEndpoint verifies OTLP without endpoint env fails.
func TestExporter_OtlpMissingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	if _, err := NewTracingExporter(context.Background(), "otlp", nil); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("tracing error = %v, want %v", err, ErrEndpointNotConfigured)
	}
	if _, err := NewMetricsReader(context.Background(), "otlp", nil); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("metrics error = %v, want %v", err, ErrEndpointNotConfigured)
	}
}

// TestExporter_OtlpWithEndpoint verifies OTLP with endpoint env succeeds.
func TestExporter_OtlpWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4317")

	exp, err := NewTracingExporter(context.Background(), "otlp", nil)
	if err != nil {
		t.Fatalf("failed to create OTLP exporter with endpoint: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

// TestExporter_JaegerMissingEndpoint verifies Jaeger without endpoint fails.
func TestExporter_JaegerMissingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_JAEGER_ENDPOINT", "")

	_, err := NewTracingExporter(context.Background(), "jaeger", nil)
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("error = %v, want %v", err, ErrEndpointNotConfigured)
	}
}

// TestExporter_PrometheusReturnsReader verifies Prometheus metrics reader.
func TestExporter_PrometheusReturnsReader(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "prometheus", nil)
	if err != nil {
		t.Fatalf("failed to create Prometheus reader: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

// TestExporter_NoneReturnsNil verifies 'none' and empty names disable export.
func TestExporter_NoneReturnsNil(t *testing.T) {
	for _, name := range []string{"none", ""} {
		exp, err := NewTracingExporter(context.Background(), name, nil)
		if err != nil || exp != nil {
			t.Errorf("NewTracingExporter(%q) = (%v, %v), want (nil, nil)", name, exp, err)
		}
		reader, err := NewMetricsReader(context.Background(), name, nil)
		if err != nil || reader != nil {
			t.Errorf("NewMetricsReader(%q) = (%v, %v), want (nil, nil)", name, reader, err)
		}
	}
}
