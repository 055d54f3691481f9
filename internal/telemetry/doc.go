// Package telemetry wires search counters into Prometheus and search calls
// into OpenTelemetry spans.
//
// SearchObserver implements astar.Observer on a private registry, so several
// observers can coexist in one process (and in tests) without colliding on
// the default registerer. Tracing goes through the global otel provider; it
// is a no-op until a provider is installed.
package telemetry
