package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"pkgadmin/pkg/controller"
	"pkgadmin/pkg/metrics"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRoutePattern(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	rec, err := metrics.NewRecorder(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(rec))
	r.Route("/api/admin", func(r chi.Router) {
		r.Put("/packages/{package_id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPreconditionFailed)
		})
	})

	for _, path := range []string{"/api/admin/packages/a", "/api/admin/packages/b", "/nowhere"} {
		req := httptest.NewRequest(http.MethodPut, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	counts := map[string]int64{}
	statuses := map[string]int64{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != metrics.RequestsName {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			route, _ := dp.Attributes.Value(attribute.Key("http.route"))
			status, _ := dp.Attributes.Value(attribute.Key("http.response.status_code"))
			counts[route.AsString()] += dp.Value
			statuses[route.AsString()] = status.AsInt64()
		}
	}

	require.Equal(t, int64(2), counts["/api/admin/packages/{package_id}"])
	require.Equal(t, int64(http.StatusPreconditionFailed), statuses["/api/admin/packages/{package_id}"])
	require.Equal(t, int64(1), counts["unmatched"])
	require.Equal(t, int64(http.StatusNotFound), statuses["unmatched"])
}
