package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
)

type streamMetric struct {
	metricName  string
	metricTags  map[string]string
	metricValue float64
}

type PeriodicMetricsReporter struct {
	streamMetrics map[string]streamMetric
	lock          sync.RWMutex
	client        *statsd.Client
	settings      *PeriodicMetricsReporterConfig
}

func (d *PeriodicMetricsReporter) RemoveStream(name string) { // coverage-ignore (should be tested in integration tests)
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.streamMetrics, name)
}

func (d *PeriodicMetricsReporter) AddStream(name string, metricName string, tags map[string]string) { // coverage-ignore (should be tested in integration tests)
	d.lock.Lock()
	defer d.lock.Unlock()

	d.streamMetrics[name] = streamMetric{
		metricName:  metricName,
		metricTags:  tags,
		metricValue: 1,
	}
}

// RunPeriodicMetricsReporter starts the metrics reporting loop for managed streams.
// It reports a metric for each registered stream at regular intervals.
// When context is cancelled, the reporting loop exits.
func (d *PeriodicMetricsReporter) RunPeriodicMetricsReporter(ctx context.Context) { // coverage-ignore (should be tested in integration tests)
	time.Sleep(d.settings.InitialDelay)
	for {
		select {
		case <-ctx.Done():
			return
		default:
			d.lock.RLock()
			for _, metric := range d.streamMetrics {
				Increment(d.client, metric.metricName, metric.metricTags)
			}
			d.lock.RUnlock()
		}
		time.Sleep(d.settings.ReportInterval)
	}
}

func NewPeriodicMetricsReporter(client *statsd.Client, settings *PeriodicMetricsReporterConfig) *PeriodicMetricsReporter { // coverage-ignore (constructor)
	return &PeriodicMetricsReporter{
		streamMetrics: make(map[string]streamMetric),
		client:        client,
		settings:      settings,
	}
}
