package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config configures the metrics provider.
type Config struct {
	ServiceName string
	Version     string
	Exporter    string // otlp|prometheus|stdout|none
}

var validExporters = map[string]bool{
	"otlp":       true,
	"prometheus": true,
	"stdout":     true,
	"none":       true,
	"":           true,
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.ServiceName == "" {
		return errors.New("telemetry: service name is required")
	}
	if !validExporters[c.Exporter] {
		return fmt.Errorf("telemetry: unknown metrics exporter: %q", c.Exporter)
	}
	return nil
}

// Provider owns a metrics pipeline for hosts that do not already run one.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Context: Shutdown honors cancellation/deadlines.
// - Errors: Shutdown is idempotent and returns the first error encountered.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
}

// NewProvider creates a metrics provider with the configured exporter and
// registers it as the global OpenTelemetry meter provider.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: failed to create resource: %w", err)
	}

	reader, err := newMetricsReader(ctx, cfg.Exporter)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)

	return &Provider{
		meterProvider: mp,
		meter:         mp.Meter(cfg.ServiceName),
	}, nil
}

// Meter returns the configured meter.
func (p *Provider) Meter() metric.Meter {
	return p.meter
}

// Recorder creates a Recorder mirrored into this provider's meter.
func (p *Provider) Recorder() (*Recorder, error) {
	return NewRecorderWithMeter(p.meter)
}

// Shutdown flushes and stops the metrics pipeline.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: meter shutdown: %w", err)
	}
	return nil
}
