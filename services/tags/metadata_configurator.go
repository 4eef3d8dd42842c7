package tags

import (
	"errors"

	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

var _ Configurator = &metadataConfigurator{}

// metadataConfigurator marks a stream as managed by this operator and records
// the KinesisStream resource it is reconciled from. It adds the
// streaming.lifion.dev/managed-by and streaming.lifion.dev/resource tags.
type metadataConfigurator struct {
	resourceName string
}

func (f metadataConfigurator) ConfigureTags(tags provisioner.TagSet) error {
	if f.resourceName == "" {
		return errors.New("resource name cannot be empty in metadataConfigurator")
	}

	tags[ManagedByTag] = "lifion-kinesis"
	tags[ResourceTag] = f.resourceName
	return nil
}

func NewMetadataConfigurator(resourceName string) Configurator {
	return &metadataConfigurator{
		resourceName: resourceName,
	}
}
