package provisioner

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/crispmark/lifion-kinesis/telemetry"
	"k8s.io/klog/v2"
)

// StreamReconciler drives a remote stream towards its desired state. Every
// operation is idempotent: reapplying an already satisfied desired state
// issues no remote writes.
type StreamReconciler struct {
	gateway Gateway
}

// NewStreamReconciler creates a new StreamReconciler instance.
func NewStreamReconciler(gateway Gateway) *StreamReconciler {
	return &StreamReconciler{gateway: gateway}
}

// CheckStreamExists resolves the settled existence of a stream. Transitional
// remote states are waited out: a stream being deleted resolves to absent, a
// stream being created or updated resolves to its active identity. A zero
// descriptor with a nil error means the stream does not exist.
func (s *StreamReconciler) CheckStreamExists(ctx context.Context, streamName string) (StreamDescriptor, error) {
	logger := s.getLogger(ctx, streamName)

	description, err := s.gateway.DescribeStream(ctx, streamName)
	if errors.Is(err, ErrStreamNotFound) {
		logger.V(2).Info("stream does not exist")
		return StreamDescriptor{}, nil
	}
	if err != nil {
		return StreamDescriptor{}, fmt.Errorf("failed to describe stream %s: %w", streamName, err)
	}

	switch description.Status {
	case StreamStatusDeleting:
		logger.V(1).Info("stream is being deleted, waiting for the deletion to complete")
		if err := s.gateway.WaitUntilStreamNotExists(ctx, streamName); err != nil {
			return StreamDescriptor{}, fmt.Errorf("failed to wait for stream %s deletion: %w", streamName, err)
		}
		return StreamDescriptor{}, nil

	case StreamStatusActive:
		return StreamDescriptor{ARN: description.ARN, CreatedOn: description.CreatedOn}, nil

	default:
		logger.V(1).Info("stream is not active yet, waiting", "status", description.Status)
		description, err = s.gateway.WaitUntilStreamExists(ctx, streamName)
		if err != nil {
			return StreamDescriptor{}, fmt.Errorf("failed to wait for stream %s to become active: %w", streamName, err)
		}
		return StreamDescriptor{ARN: description.ARN, CreatedOn: description.CreatedOn}, nil
	}
}

// EnsureStreamExists resolves the stream's existence and creates it when
// missing and creation is enabled. The returned descriptor is zero when the
// stream does not exist and createIfMissing is false.
func (s *StreamReconciler) EnsureStreamExists(ctx context.Context, streamName string, shardCount int32, createIfMissing bool) (StreamDescriptor, error) {
	logger := s.getLogger(ctx, streamName)

	descriptor, err := s.CheckStreamExists(ctx, streamName)
	if err != nil {
		return StreamDescriptor{}, err
	}
	if descriptor.Exists() {
		logger.V(2).Info("stream already exists", "arn", descriptor.ARN)
		return descriptor, nil
	}
	if !createIfMissing {
		logger.V(1).Info("stream does not exist and creation is disabled")
		return StreamDescriptor{}, nil
	}

	logger.V(1).Info("creating stream", "shardCount", shardCount)
	if err := s.gateway.CreateStream(ctx, streamName, shardCount); err != nil {
		return StreamDescriptor{}, fmt.Errorf("failed to create stream %s: %w", streamName, err)
	}

	description, err := s.gateway.WaitUntilStreamExists(ctx, streamName)
	if err != nil {
		return StreamDescriptor{}, fmt.Errorf("failed to wait for stream %s to become active: %w", streamName, err)
	}

	telemetry.Increment(telemetry.GetClient(ctx), "kinesis.stream.created", map[string]string{"stream": streamName})
	logger.V(1).Info("stream created and active", "arn", description.ARN)
	return StreamDescriptor{ARN: description.ARN, CreatedOn: description.CreatedOn}, nil
}

// ConfirmStreamTags merges the desired tags over the stream's current tags
// and writes the result back only when it differs. Tags absent from the
// desired set are never removed.
func (s *StreamReconciler) ConfirmStreamTags(ctx context.Context, streamName string, desired TagSet) error {
	logger := s.getLogger(ctx, streamName)

	existing, err := s.gateway.ListTagsForStream(ctx, streamName)
	if err != nil {
		return fmt.Errorf("failed to list tags of stream %s: %w", streamName, err)
	}

	merged := mergeTags(existing, desired)
	if maps.Equal(merged, existing) {
		logger.V(2).Info("stream tags are up to date")
		return nil
	}

	if err := s.gateway.AddTagsToStream(ctx, streamName, merged); err != nil {
		return fmt.Errorf("failed to tag stream %s: %w", streamName, err)
	}

	telemetry.Increment(telemetry.GetClient(ctx), "kinesis.stream.tagged", map[string]string{"stream": streamName})
	logger.V(1).Info("stream tags updated", "tags", len(merged))
	return nil
}

// EnsureStreamEncryption escalates the stream to server-side encryption when
// it is not encrypted yet. Already encrypted streams are left untouched
// regardless of the configured key; encryption is never downgraded.
func (s *StreamReconciler) EnsureStreamEncryption(ctx context.Context, streamName string, spec EncryptionSpec) error {
	logger := s.getLogger(ctx, streamName)

	if spec.Type == "" || spec.Type == EncryptionTypeNone {
		logger.V(2).Info("no encryption requested for stream")
		return nil
	}

	description, err := s.gateway.DescribeStream(ctx, streamName)
	if err != nil {
		return fmt.Errorf("failed to describe stream %s: %w", streamName, err)
	}

	if description.Encryption != "" && description.Encryption != EncryptionTypeNone {
		logger.V(2).Info("stream is already encrypted", "type", description.Encryption)
		return nil
	}

	keyID := spec.KeyID
	if keyID == "" {
		keyID = DefaultEncryptionKeyID
	}

	logger.V(1).Info("starting stream encryption", "type", spec.Type, "keyId", keyID)
	if err := s.gateway.StartStreamEncryption(ctx, streamName, spec.Type, keyID); err != nil {
		return fmt.Errorf("failed to start encryption of stream %s: %w", streamName, err)
	}

	// enabling encryption takes the stream through UPDATING before it
	// settles back to ACTIVE
	if _, err := s.gateway.WaitUntilStreamExists(ctx, streamName); err != nil {
		return fmt.Errorf("failed to wait for stream %s to become active: %w", streamName, err)
	}

	telemetry.Increment(telemetry.GetClient(ctx), "kinesis.stream.encrypted", map[string]string{"stream": streamName})
	logger.V(1).Info("stream encryption enabled")
	return nil
}

func (s *StreamReconciler) getLogger(ctx context.Context, streamName string) klog.Logger {
	return klog.FromContext(ctx).
		WithName("StreamReconciler").
		WithValues("stream", streamName)
}

func mergeTags(existing TagSet, desired TagSet) TagSet {
	merged := make(TagSet, len(existing)+len(desired))
	maps.Copy(merged, existing)
	maps.Copy(merged, desired)
	return merged
}
