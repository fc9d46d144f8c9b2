package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricBuildTotal     = "holidays.build.total"
	MetricBuildErrors    = "holidays.build.errors"
	MetricBuildDuration  = "holidays.build.duration_ms"
	MetricCacheHits      = "holidays.cache.hits"
	MetricCacheMisses    = "holidays.cache.misses"
	MetricCacheEvictions = "holidays.cache.evictions"
)

// Metrics records calendar build and cache metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordBuild records one year build with duration and error status.
	RecordBuild(ctx context.Context, meta QueryMeta, duration time.Duration, err error)

	// RecordCacheHit records a year served from cache.
	RecordCacheHit(ctx context.Context, meta QueryMeta)

	// RecordCacheMiss records a year that had to be built.
	RecordCacheMiss(ctx context.Context, meta QueryMeta)

	// RecordEviction records a year dropped to make room.
	RecordEviction(ctx context.Context, meta QueryMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	buildTotal    metric.Int64Counter
	buildErrors   metric.Int64Counter
	buildDuration metric.Float64Histogram
	cacheHits     metric.Int64Counter
	cacheMisses   metric.Int64Counter
	evictions     metric.Int64Counter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	m := &metricsImpl{}
	var err error

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.buildTotal, MetricBuildTotal, "Total number of holiday year builds", "{build}"},
		{&m.buildErrors, MetricBuildErrors, "Total number of failed holiday year builds", "{error}"},
		{&m.cacheHits, MetricCacheHits, "Holiday years served from cache", "{hit}"},
		{&m.cacheMisses, MetricCacheMisses, "Holiday years not found in cache", "{miss}"},
		{&m.evictions, MetricCacheEvictions, "Holiday years evicted from cache", "{eviction}"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit),
		)
		if err != nil {
			return nil, err
		}
	}

	m.buildDuration, err = meter.Float64Histogram(
		MetricBuildDuration,
		metric.WithDescription("Holiday year build duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func attrs(meta QueryMeta) metric.MeasurementOption {
	kv := []attribute.KeyValue{
		attribute.String("holidays.exchange", meta.Exchange),
	}
	if meta.Year != 0 {
		kv = append(kv, attribute.Int("holidays.year", meta.Year))
	}
	return metric.WithAttributes(kv...)
}

// RecordBuild records metrics for a year build.
func (m *metricsImpl) RecordBuild(ctx context.Context, meta QueryMeta, duration time.Duration, err error) {
	opt := attrs(meta)

	m.buildTotal.Add(ctx, 1, opt)
	if err != nil {
		m.buildErrors.Add(ctx, 1, opt)
	}
	m.buildDuration.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

func (m *metricsImpl) RecordCacheHit(ctx context.Context, meta QueryMeta) {
	m.cacheHits.Add(ctx, 1, attrs(meta))
}

func (m *metricsImpl) RecordCacheMiss(ctx context.Context, meta QueryMeta) {
	m.cacheMisses.Add(ctx, 1, attrs(meta))
}

func (m *metricsImpl) RecordEviction(ctx context.Context, meta QueryMeta) {
	m.evictions.Add(ctx, 1, attrs(meta))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordBuild(context.Context, QueryMeta, time.Duration, error) {}
func (noopMetrics) RecordCacheHit(context.Context, QueryMeta)                    {}
func (noopMetrics) RecordCacheMiss(context.Context, QueryMeta)                   {}
func (noopMetrics) RecordEviction(context.Context, QueryMeta)                    {}
