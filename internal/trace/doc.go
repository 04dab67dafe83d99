// Package trace sets up OpenTelemetry export for render, click and close
// spans emitted by views. Export is opt-in: without an endpoint the
// package hands out the global (no-op) tracer.
package trace
