package tags

// ConfiguratorProvider defines an interface for services that assemble a tag
// configurator chain for a managed stream.
type ConfiguratorProvider interface {

	// TagConfigurator returns the configurator producing the desired tag set.
	TagConfigurator() (Configurator, error)
}
