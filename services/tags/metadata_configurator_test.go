package tags

import (
	"testing"

	"github.com/crispmark/lifion-kinesis/services/provisioner"
	"github.com/stretchr/testify/require"
)

func Test_MetadataConfigurator_Set_Tags(t *testing.T) {
	tags := provisioner.TagSet{}

	configurator := NewMetadataConfigurator("orders-stream")
	err := configurator.ConfigureTags(tags)
	require.NoError(t, err)
	require.Equal(t, "lifion-kinesis", tags[ManagedByTag])
	require.Equal(t, "orders-stream", tags[ResourceTag])
}

func Test_MetadataConfigurator_Empty_Resource_Name(t *testing.T) {
	tags := provisioner.TagSet{}

	configurator := NewMetadataConfigurator("")
	err := configurator.ConfigureTags(tags)
	require.Error(t, err)
}

func Test_MetadataConfigurator_Does_Not_Affect_Other_Tags(t *testing.T) {
	tags := provisioner.TagSet{
		"team": "data-platform",
	}

	configurator := NewMetadataConfigurator("orders-stream")
	err := configurator.ConfigureTags(tags)
	require.NoError(t, err)
	require.Equal(t, "data-platform", tags["team"])
	require.Equal(t, "orders-stream", tags[ResourceTag])
}

func Test_MetadataConfigurator_Overwrites_Previous_Resource(t *testing.T) {
	tags := provisioner.TagSet{
		ResourceTag: "old-stream",
	}

	configurator := NewMetadataConfigurator("new-stream")
	err := configurator.ConfigureTags(tags)
	require.NoError(t, err)
	require.Equal(t, "new-stream", tags[ResourceTag])
}
