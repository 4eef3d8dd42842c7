package tags

import (
	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

var _ Configurator = (*specConfigurator)(nil)

// specConfigurator applies the tags declared on the KinesisStream resource.
// It runs last in the chain so resource-level tags win over operator-level
// ones on key conflicts.
type specConfigurator struct {
	desired provisioner.TagSet
}

func (c *specConfigurator) ConfigureTags(tags provisioner.TagSet) error {
	for key, value := range c.desired {
		tags[key] = value
	}
	return nil
}

func NewSpecConfigurator(desired provisioner.TagSet) Configurator {
	return &specConfigurator{
		desired: desired,
	}
}
