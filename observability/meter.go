package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/enumkit/logger"
	"github.com/kbukum/enumkit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Get().Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the global OpenTelemetry meter provider with an OTLP
// HTTP exporter. The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricAdvanced            = "enumerator.advanced"
	MetricMaterialized        = "enumerator.materialized"
	MetricMaterializeDuration = "enumerator.materialize.duration"
)

// AttrPipeline labels every metric with the pipeline it was recorded for.
const AttrPipeline = "pipeline"

// Metrics holds the instruments recorded by Instrument and Materialize.
type Metrics struct {
	advanced            metric.Int64Counter
	materialized        metric.Int64Counter
	materializeDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	advanced, err := meter.Int64Counter(MetricAdvanced,
		metric.WithDescription("Elements stepped over by instrumented enumerators"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricAdvanced, err)
	}

	materialized, err := meter.Int64Counter(MetricMaterialized,
		metric.WithDescription("Elements produced by materialized pipelines"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricMaterialized, err)
	}

	materializeDuration, err := meter.Float64Histogram(MetricMaterializeDuration,
		metric.WithDescription("Time spent draining a pipeline"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricMaterializeDuration, err)
	}

	return &Metrics{
		advanced:            advanced,
		materialized:        materialized,
		materializeDuration: materializeDuration,
	}, nil
}

// RecordAdvance counts one element stepped over in pipeline.
func (m *Metrics) RecordAdvance(ctx context.Context, pipeline string) {
	m.advanced.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrPipeline, pipeline)))
}

// RecordMaterialize records a completed drain of n elements.
func (m *Metrics) RecordMaterialize(ctx context.Context, pipeline string, n int, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String(AttrPipeline, pipeline))
	m.materialized.Add(ctx, int64(n), attrs)
	m.materializeDuration.Record(ctx, d.Seconds(), attrs)
}
