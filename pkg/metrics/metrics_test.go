package metrics_test

import (
	"context"
	"net/http"
	"pkgadmin/pkg/metrics"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		require.Equal(t, metrics.MeterName, sm.Scope.Name)
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func TestRecorder_Observe(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	rec, err := metrics.NewRecorder(mp)
	require.NoError(t, err)

	ctx := context.Background()
	rec.Observe(ctx, http.MethodGet, "/api/admin/packages/{packageID}", http.StatusOK, 20*time.Millisecond)
	rec.Observe(ctx, http.MethodGet, "/api/admin/packages/{packageID}", http.StatusOK, 30*time.Millisecond)
	rec.Observe(ctx, http.MethodPut, "/api/admin/packages/{packageID}", http.StatusPreconditionFailed, time.Millisecond)

	got := collect(t, reader)

	requests, ok := got[metrics.RequestsName].Data.(metricdata.Sum[int64])
	require.True(t, ok, "requests should be an int64 sum")
	require.Len(t, requests.DataPoints, 2)
	for _, dp := range requests.DataPoints {
		method, _ := dp.Attributes.Value(attribute.Key("http.request.method"))
		switch method.AsString() {
		case http.MethodGet:
			require.Equal(t, int64(2), dp.Value)
		case http.MethodPut:
			require.Equal(t, int64(1), dp.Value)
			status, _ := dp.Attributes.Value(attribute.Key("http.response.status_code"))
			require.Equal(t, int64(http.StatusPreconditionFailed), status.AsInt64())
		default:
			t.Fatalf("unexpected method %q", method.AsString())
		}
	}

	duration, ok := got[metrics.DurationName].Data.(metricdata.Histogram[float64])
	require.True(t, ok, "duration should be a float64 histogram")
	require.Len(t, duration.DataPoints, 2)
	for _, dp := range duration.DataPoints {
		require.Equal(t, metrics.DefaultBuckets, dp.Bounds)
	}
}
