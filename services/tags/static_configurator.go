package tags

import (
	"errors"

	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

var _ Configurator = (*staticConfigurator)(nil)

// staticConfigurator is a Configurator that applies the operator-level static
// tags configured for every managed stream.
type staticConfigurator struct {
	static map[string]string
}

func (c *staticConfigurator) ConfigureTags(tags provisioner.TagSet) error {
	for key, value := range c.static {
		if key == "" {
			return errors.New("tag key cannot be empty in staticConfigurator")
		}
		tags[key] = value
	}
	return nil
}

func NewStaticConfigurator(static map[string]string) Configurator {
	return &staticConfigurator{
		static: static,
	}
}
