package telemetry

import (
	"context"
	"os"

	"github.com/DataDog/datadog-go/v5/statsd"
	"k8s.io/klog/v2"
)

type statsdContextKey struct{}

const defaultStatsdEndpoint = "127.0.0.1:8125"

// WithStatsd attaches a statsd client publishing under the provided namespace
// to the context. The agent endpoint is read from STATSD_ENDPOINT. When the
// client cannot be created, the context is returned without one and metric
// emission becomes a no-op.
func WithStatsd(ctx context.Context, namespace string) context.Context {
	endpoint := os.Getenv("STATSD_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultStatsdEndpoint
	}

	client, err := statsd.New(endpoint, statsd.WithNamespace(namespace))
	if err != nil {
		klog.FromContext(ctx).V(0).Error(err, "statsd client cannot be created, metrics will not be reported", "endpoint", endpoint)
		return ctx
	}

	return context.WithValue(ctx, statsdContextKey{}, client)
}

// GetClient returns the statsd client attached to the context, or nil when
// metrics are not configured.
func GetClient(ctx context.Context) *statsd.Client {
	client, ok := ctx.Value(statsdContextKey{}).(*statsd.Client)
	if !ok {
		return nil
	}
	return client
}

// Increment bumps a counter by one. Safe to call with a nil client.
func Increment(client *statsd.Client, name string, tags map[string]string) {
	if client == nil {
		return
	}
	_ = client.Incr(name, toStatsdTags(tags), 1)
}

// Gauge reports a point-in-time value. Safe to call with a nil client.
func Gauge(client *statsd.Client, name string, value float64, tags map[string]string) {
	if client == nil {
		return
	}
	_ = client.Gauge(name, value, toStatsdTags(tags), 1)
}

func toStatsdTags(tags map[string]string) []string {
	result := make([]string, 0, len(tags))
	for key, value := range tags {
		result = append(result, key+":"+value)
	}
	return result
}
