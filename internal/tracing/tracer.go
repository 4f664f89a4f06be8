// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/canonical/trivia-service/internal/logging"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets up the global otel tracer provider based on config. When
// tracing is disabled a noop tracer is returned and no provider is installed.
func NewTracer(config *Config) *Tracer {
	t := new(Tracer)
	t.logger = config.Logger

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("trivia-service")
		return t
	}

	exporters := make([]sdktrace.TracerProviderOption, 0)

	if config.GRPCEndpoint != "" {
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(config.GRPCEndpoint),
				otlptracegrpc.WithInsecure(),
				otlptracegrpc.WithTimeout(5*time.Second),
			),
		)
		if err != nil {
			t.logger.Errorf("failed to create otlp grpc exporter: %v", err)
		} else {
			exporters = append(exporters, sdktrace.WithBatcher(exporter))
		}
	}

	if config.HTTPEndpoint != "" {
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(config.HTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
		if err != nil {
			t.logger.Errorf("failed to create otlp http exporter: %v", err)
		} else {
			exporters = append(exporters, sdktrace.WithBatcher(exporter))
		}
	}

	if len(exporters) == 0 {
		exporter, err := stdouttrace.New()
		if err != nil {
			t.logger.Fatalf("failed to create stdout exporter: %v", err)
		}
		exporters = append(exporters, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(exporters...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaeger.Jaeger{},
		),
	)

	t.tracer = tp.Tracer("trivia-service")

	return t
}

// NewNoopTracer returns a tracer that records nothing, for tests.
func NewNoopTracer() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer("trivia-service")}
}
