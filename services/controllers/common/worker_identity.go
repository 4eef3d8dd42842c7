package common

import "github.com/google/uuid"

// WorkerId defines a unique identifier for a stream provisioning worker
// Typically this would be derived from the name of the object being reconciled
type WorkerId string

// StreamWorkerIdentity defines an interface for objects that can provide a WorkerId
type StreamWorkerIdentity interface {
	WorkerId() WorkerId
}

// NewInstanceId returns a unique identifier for this operator process, used
// to distinguish replicas in telemetry tags.
func NewInstanceId() WorkerId {
	return WorkerId(uuid.New().String())
}
