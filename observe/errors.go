package observe

import "errors"

// Config errors.
var (
	ErrMissingServiceName     = errors.New("observe: service name is required")
	ErrInvalidSampleRatio     = errors.New("observe: sample ratio must be within [0, 1]")
	ErrInvalidTracingExporter = errors.New("observe: invalid tracing exporter")
	ErrInvalidMetricsExporter = errors.New("observe: invalid metrics exporter")
	ErrInvalidLogLevel        = errors.New("observe: invalid log level")
	ErrInvalidWindow          = errors.New("observe: window min year after max year")
	ErrInvalidBuckets         = errors.New("observe: histogram buckets must ascend")
)

// ErrNilObserver indicates a nil Observer was provided.
var ErrNilObserver = errors.New("observe: observer is nil")
