// Package telemetry — подключение OpenTelemetry-трейсинга для сервиса витрины.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultEndpoint = "localhost:4318"

// TracingOptions — параметры экспорта спанов.
type TracingOptions struct {
	ServiceName string
	Endpoint    string  // host:port OTLP/HTTP коллектора, без схемы
	SampleRatio float64 // доля трейсов [0..1]
}

// Shutdown — сброс буфера и остановка провайдера.
type Shutdown func(context.Context) error

// SetupTracing — OTLP/HTTP экспорт без TLS, глобальный провайдер и пропагаторы.
func SetupTracing(ctx context.Context, opts TracingOptions) (Shutdown, error) {
	if opts.Endpoint == "" {
		opts.Endpoint = defaultEndpoint
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(opts.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := NewProvider(exporter, opts)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

// NewProvider — провайдер с батч-экспортом в exporter; глобально не регистрируется.
func NewProvider(exporter sdktrace.SpanExporter, opts TracingOptions) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(opts.SampleRatio)))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
		)),
	)
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
