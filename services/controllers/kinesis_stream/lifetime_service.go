package kinesis_stream

import (
	v1 "github.com/crispmark/lifion-kinesis/pkg/apis/streaming/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// LifetimeService defines methods required for interaction with the user interface (conditions, status, events, etc.)
type LifetimeService interface {

	// ComputeConditions computes the conditions for the given stream resource.
	// provisioningErr carries the failure the current phase was reached with, if any.
	ComputeConditions(stream *v1.KinesisStream, provisioningErr error) []metav1.Condition

	// RecordLifetimeEvent records an event for the given stream resource.
	RecordLifetimeEvent(stream *v1.KinesisStream, provisioningErr error)
}
