// Package telemetry records per-component instrumentation for style
// resolution: cache-hit counters and cumulative resolve/render timings.
//
// The Recorder keeps an in-process snapshot per component display name and,
// when constructed with an OpenTelemetry meter, mirrors every update into
// counter and histogram instruments. The Provider wires up a metrics
// pipeline (stdout, prometheus, otlp, or none) for hosts that do not already
// run one.
package telemetry
