package ui

import (
	v1 "github.com/crispmark/lifion-kinesis/pkg/apis/streaming/v1"
	"github.com/crispmark/lifion-kinesis/services/controllers/kinesis_stream"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/tools/record"
)

var (
	_ kinesis_stream.LifetimeService = (*UserInterfaceService)(nil)
)

// UserInterfaceService implements LifetimeService to interact with the events and conditions of stream resources
type UserInterfaceService struct {
	recorder record.EventRecorder
}

func (u UserInterfaceService) ComputeConditions(stream *v1.KinesisStream, provisioningErr error) []metav1.Condition {
	switch stream.Status.Phase {
	case v1.PhaseProvisioning:
		return []metav1.Condition{
			{
				Type:    "Warning",
				Status:  metav1.ConditionTrue,
				Reason:  "StreamProvisioning",
				Message: "The stream is being provisioned.",
				LastTransitionTime: metav1.Time{
					Time: metav1.Now().Time,
				},
			},
		}
	case v1.PhaseReady:
		return []metav1.Condition{
			{
				Type:    "Ready",
				Status:  metav1.ConditionTrue,
				Reason:  "StreamReady",
				Message: "The stream is active and matches the declared state.",
				LastTransitionTime: metav1.Time{
					Time: metav1.Now().Time,
				},
			},
		}
	case v1.PhaseAbsent:
		return []metav1.Condition{
			{
				Type:    "Warning",
				Status:  metav1.ConditionTrue,
				Reason:  "StreamMissing",
				Message: "The stream does not exist and creation is disabled.",
				LastTransitionTime: metav1.Time{
					Time: metav1.Now().Time,
				},
			},
		}
	case v1.PhaseFailed:
		message := "The stream provisioning has failed."
		if provisioningErr != nil {
			message = "The stream provisioning has failed: " + provisioningErr.Error()
		}
		return []metav1.Condition{
			{
				Type:    "Error",
				Status:  metav1.ConditionTrue,
				Reason:  "StreamFailed",
				Message: message,
				LastTransitionTime: metav1.Time{
					Time: metav1.Now().Time,
				},
			},
		}
	default:
		return []metav1.Condition{}
	}
}

func (u UserInterfaceService) RecordLifetimeEvent(stream *v1.KinesisStream, provisioningErr error) {
	switch stream.Status.Phase {
	case v1.PhaseReady:
		u.recordStreamReady(stream)
	case v1.PhaseAbsent:
		u.recordStreamMissing(stream)
	case v1.PhaseFailed:
		u.recordStreamFailed(stream, provisioningErr)
	}
}

func (u UserInterfaceService) recordStreamReady(stream *v1.KinesisStream) {
	u.recorder.Eventf(stream,
		corev1.EventTypeNormal,
		"StreamReady",
		"Stream %s is active, ARN: %s", stream.Spec.StreamName, stream.Status.StreamARN)
}

func (u UserInterfaceService) recordStreamMissing(stream *v1.KinesisStream) {
	u.recorder.Eventf(stream,
		corev1.EventTypeWarning,
		"StreamMissing",
		"Stream %s does not exist and createIfMissing is disabled", stream.Spec.StreamName)
}

func (u UserInterfaceService) recordStreamFailed(stream *v1.KinesisStream, provisioningErr error) {
	reason := "unknown"
	if provisioningErr != nil {
		reason = provisioningErr.Error()
	}
	u.recorder.Eventf(stream,
		corev1.EventTypeWarning,
		"StreamFailed",
		"Provisioning of stream %s has failed. Reason: %s", stream.Spec.StreamName, reason)
}

func NewUserInterfaceService(recorder record.EventRecorder) *UserInterfaceService {
	return &UserInterfaceService{
		recorder: recorder,
	}
}
