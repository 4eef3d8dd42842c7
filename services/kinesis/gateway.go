package kinesis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/aws/smithy-go"
	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

const (
	defaultWaiterMaxWait      = 10 * time.Minute
	defaultWaiterPollInterval = 10 * time.Second

	// the service accepts at most this many tags per AddTagsToStream call
	maxTagsPerCall = 10
)

// streamAPI is the subset of the Kinesis Data Streams client the gateway
// uses. kinesis.Client satisfies it.
type streamAPI interface {
	DescribeStream(ctx context.Context, params *kinesis.DescribeStreamInput, optFns ...func(*kinesis.Options)) (*kinesis.DescribeStreamOutput, error)
	DescribeStreamSummary(ctx context.Context, params *kinesis.DescribeStreamSummaryInput, optFns ...func(*kinesis.Options)) (*kinesis.DescribeStreamSummaryOutput, error)
	CreateStream(ctx context.Context, params *kinesis.CreateStreamInput, optFns ...func(*kinesis.Options)) (*kinesis.CreateStreamOutput, error)
	StartStreamEncryption(ctx context.Context, params *kinesis.StartStreamEncryptionInput, optFns ...func(*kinesis.Options)) (*kinesis.StartStreamEncryptionOutput, error)
	ListTagsForStream(ctx context.Context, params *kinesis.ListTagsForStreamInput, optFns ...func(*kinesis.Options)) (*kinesis.ListTagsForStreamOutput, error)
	AddTagsToStream(ctx context.Context, params *kinesis.AddTagsToStreamInput, optFns ...func(*kinesis.Options)) (*kinesis.AddTagsToStreamOutput, error)
	ListShards(ctx context.Context, params *kinesis.ListShardsInput, optFns ...func(*kinesis.Options)) (*kinesis.ListShardsOutput, error)
	RegisterStreamConsumer(ctx context.Context, params *kinesis.RegisterStreamConsumerInput, optFns ...func(*kinesis.Options)) (*kinesis.RegisterStreamConsumerOutput, error)
	ListStreamConsumers(ctx context.Context, params *kinesis.ListStreamConsumersInput, optFns ...func(*kinesis.Options)) (*kinesis.ListStreamConsumersOutput, error)
}

var _ provisioner.Gateway = (*Gateway)(nil)

// Gateway adapts the AWS Kinesis Data Streams API to the surface the
// provisioning services consume. It owns pagination of the listing calls and
// bounds the two wait primitives with the configured waiter settings.
type Gateway struct {
	client          streamAPI
	existsWaiter    *kinesis.StreamExistsWaiter
	notExistsWaiter *kinesis.StreamNotExistsWaiter
	maxWait         time.Duration
}

// NewClient builds a Kinesis client from the ambient AWS configuration,
// applying the region and endpoint overrides from the gateway config.
func NewClient(ctx context.Context, config Config) (*kinesis.Client, error) {
	var loadOptions []func(*awsconfig.LoadOptions) error
	if config.Region != "" {
		loadOptions = append(loadOptions, awsconfig.WithRegion(config.Region))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var clientOptions []func(*kinesis.Options)
	if config.Endpoint != "" {
		clientOptions = append(clientOptions, func(o *kinesis.Options) {
			o.BaseEndpoint = aws.String(config.Endpoint)
		})
	}

	return kinesis.NewFromConfig(awsConfig, clientOptions...), nil
}

// NewGateway creates a new Gateway instance on top of a Kinesis client.
func NewGateway(client streamAPI, config Config) *Gateway {
	pollInterval := config.WaiterPollInterval
	if pollInterval <= 0 {
		pollInterval = defaultWaiterPollInterval
	}
	maxWait := config.WaiterMaxWait
	if maxWait <= 0 {
		maxWait = defaultWaiterMaxWait
	}

	existsWaiter := kinesis.NewStreamExistsWaiter(client, func(o *kinesis.StreamExistsWaiterOptions) {
		o.MinDelay = pollInterval
		o.MaxDelay = pollInterval
	})
	notExistsWaiter := kinesis.NewStreamNotExistsWaiter(client, func(o *kinesis.StreamNotExistsWaiterOptions) {
		o.MinDelay = pollInterval
		o.MaxDelay = pollInterval
	})

	return &Gateway{
		client:          client,
		existsWaiter:    existsWaiter,
		notExistsWaiter: notExistsWaiter,
		maxWait:         maxWait,
	}
}

func (g *Gateway) DescribeStream(ctx context.Context, streamName string) (provisioner.StreamDescription, error) {
	output, err := g.client.DescribeStreamSummary(ctx, &kinesis.DescribeStreamSummaryInput{
		StreamName: aws.String(streamName),
	})
	if err != nil {
		return provisioner.StreamDescription{}, mapNotFound(err)
	}

	summary := output.StreamDescriptionSummary
	if summary == nil {
		return provisioner.StreamDescription{}, fmt.Errorf("stream %s: empty description summary", streamName)
	}

	description := provisioner.StreamDescription{
		ARN:        aws.ToString(summary.StreamARN),
		Name:       aws.ToString(summary.StreamName),
		Status:     provisioner.StreamStatus(summary.StreamStatus),
		Encryption: provisioner.EncryptionType(summary.EncryptionType),
		KeyID:      aws.ToString(summary.KeyId),
	}
	if summary.StreamCreationTimestamp != nil {
		description.CreatedOn = *summary.StreamCreationTimestamp
	}
	return description, nil
}

func (g *Gateway) WaitUntilStreamExists(ctx context.Context, streamName string) (provisioner.StreamDescription, error) {
	output, err := g.existsWaiter.WaitForOutput(ctx, &kinesis.DescribeStreamInput{
		StreamName: aws.String(streamName),
	}, g.maxWait)
	if err != nil {
		return provisioner.StreamDescription{}, fmt.Errorf("stream %s did not become active: %w", streamName, err)
	}

	stream := output.StreamDescription
	if stream == nil {
		return provisioner.StreamDescription{}, fmt.Errorf("stream %s: empty description", streamName)
	}

	description := provisioner.StreamDescription{
		ARN:        aws.ToString(stream.StreamARN),
		Name:       aws.ToString(stream.StreamName),
		Status:     provisioner.StreamStatus(stream.StreamStatus),
		Encryption: provisioner.EncryptionType(stream.EncryptionType),
		KeyID:      aws.ToString(stream.KeyId),
	}
	if stream.StreamCreationTimestamp != nil {
		description.CreatedOn = *stream.StreamCreationTimestamp
	}
	return description, nil
}

func (g *Gateway) WaitUntilStreamNotExists(ctx context.Context, streamName string) error {
	err := g.notExistsWaiter.Wait(ctx, &kinesis.DescribeStreamInput{
		StreamName: aws.String(streamName),
	}, g.maxWait)
	if err != nil {
		return fmt.Errorf("stream %s was not deleted: %w", streamName, err)
	}
	return nil
}

func (g *Gateway) CreateStream(ctx context.Context, streamName string, shardCount int32) error {
	_, err := g.client.CreateStream(ctx, &kinesis.CreateStreamInput{
		StreamName: aws.String(streamName),
		ShardCount: aws.Int32(shardCount),
	})
	return err
}

func (g *Gateway) StartStreamEncryption(ctx context.Context, streamName string, encryptionType provisioner.EncryptionType, keyID string) error {
	_, err := g.client.StartStreamEncryption(ctx, &kinesis.StartStreamEncryptionInput{
		StreamName:     aws.String(streamName),
		EncryptionType: types.EncryptionType(encryptionType),
		KeyId:          aws.String(keyID),
	})
	return mapNotFound(err)
}

func (g *Gateway) ListTagsForStream(ctx context.Context, streamName string) (provisioner.TagSet, error) {
	tags := make(provisioner.TagSet)
	var exclusiveStart *string
	for {
		output, err := g.client.ListTagsForStream(ctx, &kinesis.ListTagsForStreamInput{
			StreamName:           aws.String(streamName),
			ExclusiveStartTagKey: exclusiveStart,
		})
		if err != nil {
			return nil, mapNotFound(err)
		}

		for _, tag := range output.Tags {
			tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}

		if !aws.ToBool(output.HasMoreTags) || len(output.Tags) == 0 {
			return tags, nil
		}
		exclusiveStart = output.Tags[len(output.Tags)-1].Key
	}
}

func (g *Gateway) AddTagsToStream(ctx context.Context, streamName string, tags provisioner.TagSet) error {
	batch := make(map[string]string, maxTagsPerCall)
	for key, value := range tags {
		batch[key] = value
		if len(batch) == maxTagsPerCall {
			if err := g.addTagBatch(ctx, streamName, batch); err != nil {
				return err
			}
			batch = make(map[string]string, maxTagsPerCall)
		}
	}
	if len(batch) > 0 {
		return g.addTagBatch(ctx, streamName, batch)
	}
	return nil
}

func (g *Gateway) addTagBatch(ctx context.Context, streamName string, tags map[string]string) error {
	_, err := g.client.AddTagsToStream(ctx, &kinesis.AddTagsToStreamInput{
		StreamName: aws.String(streamName),
		Tags:       tags,
	})
	return mapNotFound(err)
}

func (g *Gateway) ListShards(ctx context.Context, streamName string) ([]provisioner.ShardRecord, error) {
	records := make([]provisioner.ShardRecord, 0, 16)
	input := &kinesis.ListShardsInput{StreamName: aws.String(streamName)}
	for {
		output, err := g.client.ListShards(ctx, input)
		if err != nil {
			return nil, mapNotFound(err)
		}

		for _, shard := range output.Shards {
			record := provisioner.ShardRecord{
				ID:       aws.ToString(shard.ShardId),
				ParentID: aws.ToString(shard.ParentShardId),
			}
			if shard.SequenceNumberRange != nil {
				record.StartingSequenceNumber = aws.ToString(shard.SequenceNumberRange.StartingSequenceNumber)
			}
			records = append(records, record)
		}

		if output.NextToken == nil {
			return records, nil
		}
		// the service rejects requests carrying both StreamName and NextToken
		input = &kinesis.ListShardsInput{NextToken: output.NextToken}
	}
}

func (g *Gateway) RegisterStreamConsumer(ctx context.Context, streamARN string, consumerName string) (provisioner.EnhancedConsumer, error) {
	output, err := g.client.RegisterStreamConsumer(ctx, &kinesis.RegisterStreamConsumerInput{
		StreamARN:    aws.String(streamARN),
		ConsumerName: aws.String(consumerName),
	})
	if err != nil {
		return provisioner.EnhancedConsumer{}, mapNotFound(err)
	}
	return toEnhancedConsumer(output.Consumer), nil
}

func (g *Gateway) ListStreamConsumers(ctx context.Context, streamARN string) ([]provisioner.EnhancedConsumer, error) {
	consumers := make([]provisioner.EnhancedConsumer, 0, 4)
	var nextToken *string
	for {
		output, err := g.client.ListStreamConsumers(ctx, &kinesis.ListStreamConsumersInput{
			StreamARN: aws.String(streamARN),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, mapNotFound(err)
		}

		for _, consumer := range output.Consumers {
			consumers = append(consumers, toEnhancedConsumer(&consumer))
		}

		if output.NextToken == nil {
			return consumers, nil
		}
		nextToken = output.NextToken
	}
}

func toEnhancedConsumer(consumer *types.Consumer) provisioner.EnhancedConsumer {
	if consumer == nil {
		return provisioner.EnhancedConsumer{}
	}
	return provisioner.EnhancedConsumer{
		Name:   aws.ToString(consumer.ConsumerName),
		ARN:    aws.ToString(consumer.ConsumerARN),
		Status: provisioner.ConsumerStatus(consumer.ConsumerStatus),
	}
}

// mapNotFound rewrites the service's not-found condition into the sentinel
// the provisioning services branch on. The typed exception covers direct
// calls; the smithy fallback covers errors that crossed a layer which
// dropped the concrete type.
func mapNotFound(err error) error {
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %s", provisioner.ErrStreamNotFound, aws.ToString(notFound.Message))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
		return fmt.Errorf("%w: %s", provisioner.ErrStreamNotFound, apiErr.ErrorMessage())
	}

	return err
}
