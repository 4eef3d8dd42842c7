package tags

import (
	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

var _ Configurator = &ConfigurationChainBuilder{}

type ConfigurationChainBuilder struct {
	configurators []Configurator
}

func (b *ConfigurationChainBuilder) ConfigureTags(tags provisioner.TagSet) error {
	for _, configurator := range b.configurators {
		if configurator != nil {
			err := configurator.ConfigureTags(tags)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func NewConfiguratorChainBuilder() *ConfigurationChainBuilder {
	return &ConfigurationChainBuilder{
		configurators: []Configurator{},
	}
}

func (b *ConfigurationChainBuilder) WithConfigurator(configurator Configurator) *ConfigurationChainBuilder {
	b.configurators = append(b.configurators, configurator)
	return b
}

func (b *ConfigurationChainBuilder) Build() Configurator {
	return b
}
