// Package metrics holds the OpenTelemetry instruments shared by the service
// and the bridge that exposes them through Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider returns a MeterProvider whose instruments are collected by
// reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// OperationRecorder counts operation outcomes and records their latency.
type OperationRecorder struct {
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOperationRecorder creates the registry operation instruments on meter.
// They are exported as registry_operations_total and
// registry_operation_duration_seconds.
func NewOperationRecorder(meter metric.Meter) (*OperationRecorder, error) {
	total, err := meter.Int64Counter("registry_operations",
		metric.WithDescription("Registry operations by outcome kind."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("registry_operation_duration",
		metric.WithDescription("Registry operation latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create operation duration histogram: %w", err)
	}

	return &OperationRecorder{total: total, duration: duration}, nil
}

// Record adds one observation for operation. kind is "ok" for success or the
// error kind otherwise.
func (r *OperationRecorder) Record(ctx context.Context, operation, kind string, elapsed time.Duration) {
	r.total.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("kind", kind),
	))
	r.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
