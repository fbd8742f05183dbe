package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter           metric.Meter
	endpointGauge   metric.Int64ObservableGauge
	requestGauge    metric.Int64ObservableGauge
	backlogGauge    metric.Int64ObservableGauge
	throughputGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"hookvault",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Provisioned endpoint gauge
	oe.endpointGauge, err = oe.meter.Int64ObservableGauge(
		"hookvault.endpoints.total",
		metric.WithDescription("Number of provisioned endpoints"),
		metric.WithUnit("{endpoints}"),
		metric.WithInt64Callback(oe.observeEndpointCount),
	)
	if err != nil {
		return fmt.Errorf("creating endpoint gauge: %w", err)
	}

	// Stored request gauge
	oe.requestGauge, err = oe.meter.Int64ObservableGauge(
		"hookvault.requests.total",
		metric.WithDescription("Total number of stored captured requests"),
		metric.WithUnit("{requests}"),
		metric.WithInt64Callback(oe.observeRequestCount),
	)
	if err != nil {
		return fmt.Errorf("creating request gauge: %w", err)
	}

	// Per-endpoint backlog gauge
	oe.backlogGauge, err = oe.meter.Int64ObservableGauge(
		"hookvault.endpoint.backlog",
		metric.WithDescription("Number of stored requests per endpoint"),
		metric.WithUnit("{requests}"),
		metric.WithInt64Callback(oe.observeBacklogs),
	)
	if err != nil {
		return fmt.Errorf("creating backlog gauge: %w", err)
	}

	// Capture throughput gauge over time windows
	oe.throughputGauge, err = oe.meter.Int64ObservableGauge(
		"hookvault.capture.throughput",
		metric.WithDescription("Number of requests captured over time window"),
		metric.WithUnit("{requests}"),
		metric.WithInt64Callback(oe.observeThroughput),
	)
	if err != nil {
		return fmt.Errorf("creating throughput gauge: %w", err)
	}

	return nil
}

// observeEndpointCount is a callback that reports the endpoint count
func (oe *OTelExporter) observeEndpointCount(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetEndpointCount(ctx)
	if err != nil {
		return err
	}

	observer.Observe(count)
	return nil
}

// observeRequestCount is a callback that reports the total stored requests
func (oe *OTelExporter) observeRequestCount(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetRequestCount(ctx)
	if err != nil {
		return err
	}

	observer.Observe(count)
	return nil
}

// observeBacklogs is a callback that reports per-endpoint backlogs
func (oe *OTelExporter) observeBacklogs(ctx context.Context, observer metric.Int64Observer) error {
	backlogs, err := oe.collector.GetBacklogs(ctx)
	if err != nil {
		return err
	}

	for endpointID, count := range backlogs {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("endpoint.id", endpointID),
		))
	}

	return nil
}

// observeThroughput is a callback that reports throughput metrics
func (oe *OTelExporter) observeThroughput(ctx context.Context, observer metric.Int64Observer) error {
	throughput, err := oe.collector.GetThroughput(ctx)
	if err != nil {
		return err
	}

	observer.Observe(throughput.LastMinute, metric.WithAttributes(
		attribute.String("time.window", "1m"),
	))
	observer.Observe(throughput.LastFiveMinutes, metric.WithAttributes(
		attribute.String("time.window", "5m"),
	))
	observer.Observe(throughput.LastFifteenMinutes, metric.WithAttributes(
		attribute.String("time.window", "15m"),
	))

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
