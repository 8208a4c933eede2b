// Package telemetry provides OpenTelemetry tracing over OTLP/HTTP.
package telemetry

import (
	"context"
	"os"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "roomcrawl"

// Environment variables read by ConfigFromEnv.
const (
	EnvEndpoint = "ROOMCRAWL_OTLP_ENDPOINT" // e.g. https://api.honeycomb.io
	EnvHeaders  = "ROOMCRAWL_OTLP_HEADERS"  // comma-separated key=value pairs
)

// Config selects where traces are exported.
type Config struct {
	Endpoint       string            // OTLP/HTTP endpoint URL; empty disables export
	Headers        map[string]string // Extra request headers, such as API keys
	ServiceVersion string
}

// Enabled reports whether an exporter endpoint is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// ConfigFromEnv builds a Config from the ROOMCRAWL_OTLP_* variables.
func ConfigFromEnv() Config {
	return Config{
		Endpoint: strings.TrimSpace(os.Getenv(EnvEndpoint)),
		Headers:  parseHeaders(os.Getenv(EnvHeaders)),
	}
}

// parseHeaders splits "k1=v1,k2=v2". Malformed pairs are ignored.
func parseHeaders(s string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers
}

// Setup installs a global tracer provider exporting to cfg.Endpoint.
// When cfg is not enabled it installs nothing, spans go to the default no-op
// provider, and the returned shutdown does nothing.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithHeaders(cfg.Headers),
	)
	if err != nil {
		return nil, err
	}

	version := cfg.ServiceVersion
	if version == "" {
		version = "dev"
	}

	// Built without merging resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
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

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
