// Package observe provides observability primitives for holiday calendar
// builds and cache traffic.
//
// It is a pure instrumentation library: structured logging on zerolog,
// OpenTelemetry metrics and tracing, and a Middleware that wraps a build
// with all three. Exporter setup lives in the exporters subpackage.
package observe
