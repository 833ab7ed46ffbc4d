// Package telemetry exports OpenTelemetry traces to Honeycomb.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "fieldsim"
	serviceVersion = "0.1.0"
	tracerPrefix   = serviceName + "/"
)

// runID identifies this process in exported spans and logs.
var runID = uuid.NewString()

// RunID returns the identifier attached to every span of this process.
func RunID() string {
	return runID
}

// Setup installs a global tracer provider that batches spans to the OTLP
// HTTP endpoint named by the standard OTEL_EXPORTER_OTLP_* variables.
// The returned function flushes and stops the provider.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
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

// newResource describes this process. It is built without resource.Default()
// so its schema URL cannot conflict with the SDK's.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx, resource.WithAttributes(resourceAttributes()...))
}

func resourceAttributes() []attribute.KeyValue {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("service.instance.id", runID),
		attribute.String("host.name", host),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
}

// Tracer returns the tracer for one component, e.g. "field".
// Until Setup succeeds it hands out no-op spans.
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerPrefix + component)
}
