package metrics_test

import (
	"context"
	"petregistry/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOperationRecorder_Record(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	rec, err := metrics.NewOperationRecorder(mp.Meter("test"))
	require.NoError(t, err)

	rec.Record(ctx, "RegisterUser", "ok", 20*time.Millisecond)
	rec.Record(ctx, "RegisterUser", "CONFLICT", 5*time.Millisecond)
	rec.Record(ctx, "RegisterUser", "ok", time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	sum, ok := byName["registry_operations"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		kind, _ := dp.Attributes.Value(attribute.Key("kind"))
		counts[kind.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{"ok": 2, "CONFLICT": 1}, counts)

	hist, ok := byName["registry_operation_duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.EqualValues(t, 3, hist.DataPoints[0].Count)
	require.Equal(t, metrics.DefaultBuckets, hist.DataPoints[0].Bounds)
}

func TestNewMeterProvider_ExportsToPrometheus(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()

	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	rec, err := metrics.NewOperationRecorder(mp.Meter("test"))
	require.NoError(t, err)
	rec.Record(ctx, "Login", "ok", time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "registry_operations_total")
	require.Contains(t, names, "registry_operation_duration_seconds")
}
