// Package telemetry wires OpenTelemetry tracing and metrics. When disabled,
// the global noop providers stay in place so spans started by the
// aggregator and the provider clients cost nothing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// shutdownGrace bounds how long buffered spans and metrics may take to flush.
const shutdownGrace = 5 * time.Second

// Config holds telemetry configuration.
type Config struct {
	Enabled      bool
	Endpoint     string
	ServiceName  string
	Version      string
	Environment  string
	SamplingRate float64
}

// Provider owns the SDK providers installed by New.
type Provider struct {
	shutdowns []func(context.Context) error
}

// New installs OTLP/gRPC trace and metric providers as the otel globals.
// With telemetry disabled it returns a Provider whose Shutdown is a no-op.
func New(ctx context.Context, cfg *Config) (*Provider, error) {
	p := &Provider{}
	if !cfg.Enabled {
		return p, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, err
	}

	tracerProvider, err := newTracerProvider(ctx, cfg, res)
	if err != nil {
		return nil, err
	}

	p.shutdowns = append(p.shutdowns, tracerProvider.Shutdown)

	meterProvider, err := newMeterProvider(ctx, cfg, res)
	if err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	p.shutdowns = append(p.shutdowns, meterProvider.Shutdown)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

func newResource(cfg *Config) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	return res, nil
}

func newTracerProvider(ctx context.Context, cfg *Config, res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	return trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SamplingRate))),
	), nil
}

func newMeterProvider(ctx context.Context, cfg *Config, res *resource.Resource) (*metric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter)),
	), nil
}

// Shutdown flushes and stops every installed provider, collecting errors.
func (p *Provider) Shutdown(ctx context.Context) error {
	if len(p.shutdowns) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()

	var errs []error
	for _, shutdown := range p.shutdowns {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
		}
	}

	p.shutdowns = nil

	return errors.Join(errs...)
}
