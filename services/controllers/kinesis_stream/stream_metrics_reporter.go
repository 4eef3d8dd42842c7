package kinesis_stream

import "github.com/crispmark/lifion-kinesis/telemetry"

var _ StreamMetricsReporter = (*telemetry.PeriodicMetricsReporter)(nil)

// StreamMetricsReporter defines the interface for reporting metrics related to managed streams.
type StreamMetricsReporter interface {

	// AddStream registers a stream resource with the given metric name and tags for periodic reporting.
	AddStream(name string, metricName string, tags map[string]string)

	// RemoveStream unregisters the stream resource from metrics reporting.
	RemoveStream(name string)
}
