package provisioner

import (
	"context"
	"errors"
)

// ErrStreamNotFound reports that a stream does not exist on the remote
// service. Gateway implementations map their provider's not-found condition
// to this error so callers can treat absence as a regular state.
var ErrStreamNotFound = errors.New("stream not found")

// ErrShardLineageCycle reports that the shard listing of a stream references
// itself and can never be assembled into a lineage forest.
var ErrShardLineageCycle = errors.New("shard lineage contains a cycle")

// Gateway is the remote stream service surface the provisioning services
// depend on. Implementations own pagination of the listing calls and the
// bounding of the two wait primitives; callers only see complete results.
type Gateway interface {
	// DescribeStream returns the current stream summary, or ErrStreamNotFound
	// when the stream does not exist.
	DescribeStream(ctx context.Context, streamName string) (StreamDescription, error)

	// WaitUntilStreamExists blocks until the stream reaches ACTIVE and returns
	// its final description.
	WaitUntilStreamExists(ctx context.Context, streamName string) (StreamDescription, error)

	// WaitUntilStreamNotExists blocks until the stream is fully deleted.
	WaitUntilStreamNotExists(ctx context.Context, streamName string) error

	// CreateStream requests creation of a stream with the given shard count.
	CreateStream(ctx context.Context, streamName string, shardCount int32) error

	// StartStreamEncryption enables server-side encryption on the stream.
	StartStreamEncryption(ctx context.Context, streamName string, encryptionType EncryptionType, keyID string) error

	// ListTagsForStream returns the complete tag set of the stream.
	ListTagsForStream(ctx context.Context, streamName string) (TagSet, error)

	// AddTagsToStream upserts the provided tags onto the stream. Tags absent
	// from the argument are left untouched.
	AddTagsToStream(ctx context.Context, streamName string, tags TagSet) error

	// ListShards returns every shard of the stream, open and closed.
	ListShards(ctx context.Context, streamName string) ([]ShardRecord, error)

	// RegisterStreamConsumer registers an enhanced fan-out consumer and
	// returns its initial, usually not yet active, state.
	RegisterStreamConsumer(ctx context.Context, streamARN string, consumerName string) (EnhancedConsumer, error)

	// ListStreamConsumers returns every enhanced fan-out consumer registered
	// on the stream.
	ListStreamConsumers(ctx context.Context, streamARN string) ([]EnhancedConsumer, error)
}
