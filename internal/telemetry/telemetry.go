// Package telemetry provides OpenTelemetry tracing, exported over OTLP HTTP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "2048"
	serviceVersion = "0.1.0"

	endpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	headersEnv  = "OTEL_EXPORTER_OTLP_HEADERS"

	honeycombEndpoint = "https://api.honeycomb.io"
	honeycombKeyEnv   = "HONEYCOMB_2048_API_KEY"
	honeycombSetEnv   = "HONEYCOMB_2048_DATASET"
	defaultDataset    = "2048"
)

// ConfigureHoneycombEnv points the OTLP exporter at Honeycomb when
// HONEYCOMB_2048_API_KEY is set. Existing OTEL_* settings are left alone.
func ConfigureHoneycombEnv() {
	apiKey := os.Getenv(honeycombKeyEnv)
	if apiKey == "" {
		return
	}
	if os.Getenv(endpointEnv) == "" {
		os.Setenv(endpointEnv, honeycombEndpoint)
	}
	if os.Getenv(headersEnv) == "" {
		os.Setenv(headersEnv, honeycombHeaders(apiKey, os.Getenv(honeycombSetEnv)))
	}
}

// honeycombHeaders builds the OTLP header value for a Honeycomb team key.
func honeycombHeaders(apiKey, dataset string) string {
	if dataset == "" {
		dataset = defaultDataset
	}
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset)
}

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(endpointEnv) != ""
}

// Setup initializes OpenTelemetry with the OTLP HTTP exporter configured from
// the standard OTEL_* environment variables. Without an endpoint it installs
// nothing and the global no-op provider stays in place.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// Own resource instead of merging with resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
