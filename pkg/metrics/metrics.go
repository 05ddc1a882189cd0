// Package metrics defines the OpenTelemetry instruments shared by the HTTP
// layer. Instruments are exported to Prometheus by the meter provider the
// API server is configured with.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const (
	// MeterName is the instrumentation scope of the instruments created here.
	MeterName = "pkgadmin/http"

	// RequestsName counts handled HTTP requests.
	RequestsName = "http.server.requests"
	// DurationName records HTTP request latency in seconds.
	DurationName = "http.server.request.duration"
)

// Recorder records per-route request counts and latencies.
type Recorder struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRecorder creates the HTTP instruments on the given meter provider.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(MeterName)

	requests, err := meter.Int64Counter(RequestsName,
		metric.WithDescription("Number of handled HTTP requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram(DurationName,
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Recorder{
		requests: requests,
		duration: duration,
	}, nil
}

// Observe records one request for the route pattern with its final status code.
func (r *Recorder) Observe(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.response.status_code", status),
	)
	r.requests.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}
