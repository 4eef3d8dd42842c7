package provisioner

import (
	"time"
)

// StreamStatus is the lifecycle state the remote service reports for a stream.
type StreamStatus string

const (
	StreamStatusCreating StreamStatus = "CREATING"
	StreamStatusDeleting StreamStatus = "DELETING"
	StreamStatusActive   StreamStatus = "ACTIVE"
	StreamStatusUpdating StreamStatus = "UPDATING"
)

// EncryptionType is the server-side encryption mode of a stream.
type EncryptionType string

const (
	EncryptionTypeNone EncryptionType = "NONE"
	EncryptionTypeKMS  EncryptionType = "KMS"
)

// DefaultEncryptionKeyID is the service-managed key used when no key is
// configured explicitly.
const DefaultEncryptionKeyID = "alias/aws/kinesis"

// EncryptionSpec is the desired server-side encryption setting for a stream.
type EncryptionSpec struct {
	Type  EncryptionType
	KeyID string
}

// StreamDescriptor is a point-in-time snapshot of a stream's identity.
// The zero value describes a stream that does not exist.
type StreamDescriptor struct {
	ARN       string
	CreatedOn time.Time
}

func (d StreamDescriptor) Exists() bool {
	return d.ARN != ""
}

// TagSet is a stream's metadata tags keyed by tag name.
type TagSet map[string]string

// Shard is a single shard in a normalized stream topology. An empty Parent
// marks a root of the shard lineage forest.
type Shard struct {
	ID                     string
	Parent                 string
	StartingSequenceNumber string
}

// ConsumerStatus is the lifecycle state of an enhanced fan-out consumer.
type ConsumerStatus string

const (
	ConsumerStatusCreating ConsumerStatus = "CREATING"
	ConsumerStatusDeleting ConsumerStatus = "DELETING"
	ConsumerStatusActive   ConsumerStatus = "ACTIVE"
)

// EnhancedConsumer is a registered enhanced fan-out consumer of a stream.
type EnhancedConsumer struct {
	Name   string
	ARN    string
	Status ConsumerStatus
}

func (c EnhancedConsumer) Active() bool {
	return c.Status == ConsumerStatusActive
}

// ConsumerRegistry holds the enhanced fan-out consumers of a stream keyed by
// consumer name.
type ConsumerRegistry map[string]EnhancedConsumer

// StreamDescription is the raw stream summary returned by the gateway before
// any reconciliation decisions are applied to it.
type StreamDescription struct {
	ARN        string
	Name       string
	Status     StreamStatus
	CreatedOn  time.Time
	Encryption EncryptionType
	KeyID      string
}

// ShardRecord is a raw shard listing entry prior to lineage normalization.
// ParentID may reference a shard that already expired off the stream's
// retention window.
type ShardRecord struct {
	ID                     string
	ParentID               string
	StartingSequenceNumber string
}
