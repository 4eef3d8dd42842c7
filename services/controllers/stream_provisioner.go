package controllers

import (
	"context"

	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

var (
	_ StreamReconciler        = (*provisioner.StreamReconciler)(nil)
	_ ShardTopologyBuilder    = (*provisioner.ShardTopologyBuilder)(nil)
	_ EnhancedConsumerManager = (*provisioner.EnhancedConsumerManager)(nil)
)

// StreamReconciler drives a remote stream towards its desired existence, tag
// and encryption state.
type StreamReconciler interface {

	// CheckStreamExists resolves the settled existence of a stream, waiting
	// out transitional remote states.
	CheckStreamExists(ctx context.Context, streamName string) (provisioner.StreamDescriptor, error)

	// EnsureStreamExists resolves the stream and creates it when missing and
	// creation is enabled.
	EnsureStreamExists(ctx context.Context, streamName string, shardCount int32, createIfMissing bool) (provisioner.StreamDescriptor, error)

	// ConfirmStreamTags merges the desired tags over the stream's current
	// tags, writing only when the result differs.
	ConfirmStreamTags(ctx context.Context, streamName string, desired provisioner.TagSet) error

	// EnsureStreamEncryption escalates the stream to server-side encryption
	// when it is not encrypted yet.
	EnsureStreamEncryption(ctx context.Context, streamName string, spec provisioner.EncryptionSpec) error
}

// ShardTopologyBuilder assembles the shard lineage forest of a stream.
type ShardTopologyBuilder interface {

	// GetStreamShards returns every shard of the stream keyed by id with
	// dangling parent references normalized to roots.
	GetStreamShards(ctx context.Context, streamName string) (map[string]provisioner.Shard, error)
}

// EnhancedConsumerManager registers enhanced fan-out consumers and tracks
// their activation.
type EnhancedConsumerManager interface {

	// RegisterStreamConsumer registers a consumer and blocks until it is
	// active on the remote side.
	RegisterStreamConsumer(ctx context.Context, streamARN string, consumerName string) error

	// GetEnhancedConsumers returns the stream's consumers keyed by name once
	// every one of them is active.
	GetEnhancedConsumers(ctx context.Context, streamARN string) (provisioner.ConsumerRegistry, error)
}
