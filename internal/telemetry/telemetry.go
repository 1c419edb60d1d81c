// Package telemetry provides OpenTelemetry tracing over OTLP/HTTP.
package telemetry

import (
	"context"
	"errors"
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
	serviceName    = "simplerpg"
	serviceVersion = "0.1.0"
)

// Env vars read by ConfigureEnv.
const (
	EnvEndpoint = "SIMPLERPG_OTLP_ENDPOINT"
	EnvHeaders  = "SIMPLERPG_OTLP_HEADERS"
)

// ErrDisabled is returned by Setup when no collector endpoint is configured.
var ErrDisabled = errors.New("telemetry disabled: no OTLP endpoint")

// ConfigureEnv copies the SIMPLERPG_OTLP_* variables onto the standard
// OTEL_EXPORTER_OTLP_* names the exporter reads. It reports whether an
// endpoint is now set.
func ConfigureEnv() bool {
	if v := os.Getenv(EnvEndpoint); v != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", v)
	}
	if v := os.Getenv(EnvHeaders); v != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", v)
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter configured from
// the OTEL_* environment. Returns a shutdown function to call on exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !ConfigureEnv() {
		return nil, ErrDisabled
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Own resource rather than merging with resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
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

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
