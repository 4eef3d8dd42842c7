package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Phase represents the current phase of a KinesisStream resource
// +kubebuilder:validation:Enum=Provisioning;Ready;Absent;Failed
type Phase string

const (
	PhaseProvisioning Phase = "Provisioning"
	PhaseReady        Phase = "Ready"
	PhaseAbsent       Phase = "Absent"
	PhaseFailed       Phase = "Failed"
)

// EncryptionType is the server-side encryption mode applied to a stream
// +kubebuilder:validation:Enum=NONE;KMS
type EncryptionType string

const (
	EncryptionTypeNone EncryptionType = "NONE"
	EncryptionTypeKMS  EncryptionType = "KMS"
)

// StreamEncryption defines the desired server-side encryption of a stream
type StreamEncryption struct {

	// Type is the server-side encryption type to apply
	Type EncryptionType `json:"type"`

	// KeyID is the encryption key to use; when omitted the service-managed
	// key is used
	KeyID string `json:"keyId,omitempty"`
}

// KinesisStreamSpec defines the desired state of a Kinesis data stream
type KinesisStreamSpec struct {

	// StreamName is the name of the stream on the remote service
	StreamName string `json:"streamName"`

	// ShardCount is the shard count the stream is created with
	// +kubebuilder:validation:Minimum=1
	ShardCount int32 `json:"shardCount,omitempty"`

	// CreateIfMissing provisions the stream when it does not exist yet
	CreateIfMissing bool `json:"createIfMissing,omitempty"`

	// Tags are merged over the remote tag set; keys absent from this map are
	// never removed from the stream
	Tags map[string]string `json:"tags,omitempty"`

	// Encryption escalates the stream to server-side encryption; an already
	// encrypted stream is never downgraded
	Encryption *StreamEncryption `json:"encryption,omitempty"`

	// Consumers are the enhanced fan-out consumer names to register on the
	// stream
	Consumers []string `json:"consumers,omitempty"`
}

// StreamConsumerStatus is the observed state of one enhanced fan-out consumer
type StreamConsumerStatus struct {
	Name   string `json:"name"`
	ARN    string `json:"arn,omitempty"`
	Status string `json:"status,omitempty"`
}

// KinesisStreamStatus defines the observed state of a Kinesis data stream
type KinesisStreamStatus struct {

	// Phase represents the current phase of the stream resource
	Phase Phase `json:"phase,omitempty"`

	// StreamARN is the remote identity of the stream
	StreamARN string `json:"streamArn,omitempty"`

	// CreatedAt is the remote creation timestamp of the stream
	CreatedAt *metav1.Time `json:"createdAt,omitempty"`

	// Shards is the shard count observed in the last topology snapshot
	Shards int32 `json:"shards,omitempty"`

	// Consumers are the enhanced fan-out consumers observed on the stream
	Consumers []StreamConsumerStatus `json:"consumers,omitempty"`

	// Conditions represent the latest available observations
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +genclient
// +genclient:nonNamespaced
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster
// +kubebuilder:object:root=true

// KinesisStream is the Schema for the Kinesis stream provisioning API
type KinesisStream struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KinesisStreamSpec   `json:"spec,omitempty"`
	Status KinesisStreamStatus `json:"status,omitempty"`
}

// KinesisStreamList contains a list of KinesisStream resources
// +kubebuilder:object:root=true
type KinesisStreamList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []KinesisStream `json:"items"`
}
