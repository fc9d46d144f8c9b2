package observe

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Resource attribute keys describing what a process serves.
const (
	AttrExchanges = "holidays.exchanges"
	AttrMinYear   = "holidays.window.min_year"
	AttrMaxYear   = "holidays.window.max_year"
)

// DefaultBuildBuckets are the build duration histogram boundaries in
// milliseconds. A year build takes tens of microseconds, so the OTel
// defaults (0, 5, 10 ... 10000) would put every sample in the first bucket.
var DefaultBuildBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Exporter and level names accepted by Config. The empty string selects
// the same behavior as "none".
var (
	ValidTracingExporters = []string{"otlp", "jaeger", "stdout", "none", ""}
	ValidMetricsExporters = []string{"otlp", "prometheus", "stdout", "none", ""}
	ValidLogLevels        = []string{"debug", "info", "warn", "error", "none", ""}
)

// Config describes the telemetry of one holiday store process.
type Config struct {
	ServiceName string
	Version     string

	// Exchanges and the year window are attached to every span and metric
	// as resource attributes. A zero window is omitted.
	Exchanges []string
	MinYear   int
	MaxYear   int

	// TraceExporter is otlp, jaeger, stdout or none.
	TraceExporter string
	// SampleRatio is the fraction of traces kept, in [0, 1].
	SampleRatio float64

	// MetricsExporter is otlp, prometheus, stdout or none.
	MetricsExporter string
	// BuildBuckets overrides DefaultBuildBuckets; boundaries must ascend.
	BuildBuckets []float64

	// LogLevel is debug, info, warn, error or none.
	LogLevel string
}

// DefaultConfig returns a config with info logging and no exporters.
func DefaultConfig() Config {
	return Config{
		ServiceName: "tradingdays",
		LogLevel:    "info",
	}
}

// Validate checks names, ranges and the window.
func (c Config) Validate() error {
	if c.ServiceName == "" {
		return ErrMissingServiceName
	}
	if !slices.Contains(ValidTracingExporters, c.TraceExporter) {
		return fmt.Errorf("%w: %q", ErrInvalidTracingExporter, c.TraceExporter)
	}
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRatio, c.SampleRatio)
	}
	if !slices.Contains(ValidMetricsExporters, c.MetricsExporter) {
		return fmt.Errorf("%w: %q", ErrInvalidMetricsExporter, c.MetricsExporter)
	}
	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.MinYear > c.MaxYear {
		return fmt.Errorf("%w: %d > %d", ErrInvalidWindow, c.MinYear, c.MaxYear)
	}
	for i := 1; i < len(c.BuildBuckets); i++ {
		if c.BuildBuckets[i] <= c.BuildBuckets[i-1] {
			return fmt.Errorf("%w: %v", ErrInvalidBuckets, c.BuildBuckets)
		}
	}
	return nil
}

func (c Config) tracingEnabled() bool { return c.TraceExporter != "" && c.TraceExporter != "none" }
func (c Config) metricsEnabled() bool { return c.MetricsExporter != "" && c.MetricsExporter != "none" }
func (c Config) loggingEnabled() bool { return c.LogLevel != "" && c.LogLevel != "none" }

func (c Config) buckets() []float64 {
	if len(c.BuildBuckets) == 0 {
		return DefaultBuildBuckets
	}
	return c.BuildBuckets
}

// newResource describes the service and the holidays it serves.
func newResource(ctx context.Context, c Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(c.ServiceName),
	}
	if c.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(c.Version))
	}
	if len(c.Exchanges) > 0 {
		attrs = append(attrs, attribute.StringSlice(AttrExchanges, c.Exchanges))
	}
	if c.MinYear != 0 || c.MaxYear != 0 {
		attrs = append(attrs,
			attribute.Int(AttrMinYear, c.MinYear),
			attribute.Int(AttrMaxYear, c.MaxYear),
		)
	}
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

// buildDurationView applies the configured buckets to the build histogram.
func buildDurationView(buckets []float64) sdkmetric.View {
	return sdkmetric.NewView(
		sdkmetric.Instrument{Name: MetricBuildDuration},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: slices.Clone(buckets),
			},
		},
	)
}
