package kinesis_stream

import (
	v1 "github.com/crispmark/lifion-kinesis/pkg/apis/streaming/v1"
	"github.com/crispmark/lifion-kinesis/services/tags"
)

var _ tags.ConfiguratorProvider = &streamTagsService{}

type streamTagsService struct {
	staticTags map[string]string
	stream     *v1.KinesisStream
}

func (s streamTagsService) TagConfigurator() (tags.Configurator, error) {
	builder := tags.NewConfiguratorChainBuilder().
		WithConfigurator(tags.NewStaticConfigurator(s.staticTags)).
		WithConfigurator(tags.NewMetadataConfigurator(s.stream.Name)).
		WithConfigurator(tags.NewSpecConfigurator(s.stream.DesiredTags()))

	return builder.Build(), nil
}

func NewStreamTagsService(staticTags map[string]string, stream *v1.KinesisStream) tags.ConfiguratorProvider {
	return &streamTagsService{
		staticTags: staticTags,
		stream:     stream,
	}
}
