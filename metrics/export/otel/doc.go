// Package otel provides OpenTelemetry metric exporter bindings for the
// service counters.
//
// [NewExporter] registers an Int64ObservableCounter per counter plus the
// audit backpressure counter. A single callback reads
// [feedgate.Service.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate service state.
package otel
