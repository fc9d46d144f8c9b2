package observe

import (
	"context"
	"time"
)

// BuildFunc builds the holidays of one exchange year.
// The result is passed through the Middleware untouched.
type BuildFunc func(ctx context.Context, meta QueryMeta) (any, error)

// sized is implemented by results that can report an entry count.
type sized interface {
	Len() int
}

// Middleware wraps calendar builds with tracing, metrics and logging, and
// reports cache traffic.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe BuildFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from wrapped function are recorded and propagated unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
// Nil components are replaced by no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// NopMiddleware returns a Middleware that records nothing.
func NopMiddleware() *Middleware {
	return NewMiddleware(nil, nil, nil)
}

// Wrap wraps a BuildFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn BuildFunc) BuildFunc {
	return func(ctx context.Context, meta QueryMeta) (any, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		result, err := fn(ctx, meta)
		duration := time.Since(start)

		m.tracer.EndSpan(span, err)
		m.metrics.RecordBuild(ctx, meta, duration, err)

		log := m.logger.WithQuery(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			log.Error(ctx, "holiday build failed", fields...)
			return result, err
		}

		if s, ok := result.(sized); ok {
			fields = append(fields, Field{Key: "holidays", Value: s.Len()})
		}
		log.Info(ctx, "holiday build completed", fields...)
		return result, nil
	}
}

// Query runs fn inside a span for one store query, so builds it triggers
// become child spans. Failures are logged at debug level; the caller
// reports them.
func (m *Middleware) Query(ctx context.Context, meta QueryMeta, fn func(context.Context) error) error {
	ctx, span := m.tracer.StartSpan(ctx, meta)
	err := fn(ctx)
	m.tracer.EndSpan(span, err)
	if err != nil {
		m.logger.WithQuery(meta).Debug(ctx, "holiday query failed", Field{Key: "error", Value: err.Error()})
	}
	return err
}

// CacheHit records a cache hit.
func (m *Middleware) CacheHit(ctx context.Context, meta QueryMeta) {
	m.metrics.RecordCacheHit(ctx, meta)
}

// CacheMiss records a cache miss.
func (m *Middleware) CacheMiss(ctx context.Context, meta QueryMeta) {
	m.metrics.RecordCacheMiss(ctx, meta)
	m.logger.WithQuery(meta).Debug(ctx, "holiday cache miss")
}

// Eviction records a year dropped from the cache.
func (m *Middleware) Eviction(ctx context.Context, meta QueryMeta) {
	m.metrics.RecordEviction(ctx, meta)
	m.logger.WithQuery(meta).Debug(ctx, "holiday cache eviction")
}

// Logger returns the middleware's logger.
func (m *Middleware) Logger() Logger {
	return m.logger
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
