package tags

import "github.com/crispmark/lifion-kinesis/services/provisioner"

// ManagedByTag is the tag key marking a stream as managed by this operator.
const ManagedByTag = "streaming.lifion.dev/managed-by"

// ResourceTag is the tag key recording the KinesisStream resource a stream belongs to.
const ResourceTag = "streaming.lifion.dev/resource"

// Configurator defines an interface for assembling the desired tag set of a
// managed stream. Each implementer can add or override tags and chain to the
// next configurator in the sequence.
type Configurator interface {

	// ConfigureTags modifies the provided tag set according to the configurator's logic.
	ConfigureTags(tags provisioner.TagSet) error
}
