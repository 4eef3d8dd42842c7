package kinesis

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	"github.com/aws/smithy-go"
	"github.com/crispmark/lifion-kinesis/services/provisioner"
	"github.com/stretchr/testify/require"
)

const testStream = "ingest-events"

var testStreamARN = "arn:aws:kinesis:us-east-1:123456789012:stream/" + testStream

type fakeStreamAPI struct {
	describeSummaryOutput *kinesis.DescribeStreamSummaryOutput
	describeSummaryErr    error

	listTagsPages  []*kinesis.ListTagsForStreamOutput
	listTagsInputs []*kinesis.ListTagsForStreamInput

	addTagsInputs []*kinesis.AddTagsToStreamInput
	addTagsErr    error

	listShardsPages  []*kinesis.ListShardsOutput
	listShardsInputs []*kinesis.ListShardsInput

	listConsumersPages  []*kinesis.ListStreamConsumersOutput
	listConsumersInputs []*kinesis.ListStreamConsumersInput

	registerOutput *kinesis.RegisterStreamConsumerOutput
	registerErr    error

	createInputs     []*kinesis.CreateStreamInput
	encryptionInputs []*kinesis.StartStreamEncryptionInput
}

func (f *fakeStreamAPI) DescribeStream(_ context.Context, _ *kinesis.DescribeStreamInput, _ ...func(*kinesis.Options)) (*kinesis.DescribeStreamOutput, error) {
	return nil, fmt.Errorf("unexpected DescribeStream call")
}

func (f *fakeStreamAPI) DescribeStreamSummary(_ context.Context, _ *kinesis.DescribeStreamSummaryInput, _ ...func(*kinesis.Options)) (*kinesis.DescribeStreamSummaryOutput, error) {
	return f.describeSummaryOutput, f.describeSummaryErr
}

func (f *fakeStreamAPI) CreateStream(_ context.Context, params *kinesis.CreateStreamInput, _ ...func(*kinesis.Options)) (*kinesis.CreateStreamOutput, error) {
	f.createInputs = append(f.createInputs, params)
	return &kinesis.CreateStreamOutput{}, nil
}

func (f *fakeStreamAPI) StartStreamEncryption(_ context.Context, params *kinesis.StartStreamEncryptionInput, _ ...func(*kinesis.Options)) (*kinesis.StartStreamEncryptionOutput, error) {
	f.encryptionInputs = append(f.encryptionInputs, params)
	return &kinesis.StartStreamEncryptionOutput{}, nil
}

func (f *fakeStreamAPI) ListTagsForStream(_ context.Context, params *kinesis.ListTagsForStreamInput, _ ...func(*kinesis.Options)) (*kinesis.ListTagsForStreamOutput, error) {
	f.listTagsInputs = append(f.listTagsInputs, params)
	page := f.listTagsPages[0]
	f.listTagsPages = f.listTagsPages[1:]
	return page, nil
}

func (f *fakeStreamAPI) AddTagsToStream(_ context.Context, params *kinesis.AddTagsToStreamInput, _ ...func(*kinesis.Options)) (*kinesis.AddTagsToStreamOutput, error) {
	f.addTagsInputs = append(f.addTagsInputs, params)
	return &kinesis.AddTagsToStreamOutput{}, f.addTagsErr
}

func (f *fakeStreamAPI) ListShards(_ context.Context, params *kinesis.ListShardsInput, _ ...func(*kinesis.Options)) (*kinesis.ListShardsOutput, error) {
	f.listShardsInputs = append(f.listShardsInputs, params)
	page := f.listShardsPages[0]
	f.listShardsPages = f.listShardsPages[1:]
	return page, nil
}

func (f *fakeStreamAPI) RegisterStreamConsumer(_ context.Context, _ *kinesis.RegisterStreamConsumerInput, _ ...func(*kinesis.Options)) (*kinesis.RegisterStreamConsumerOutput, error) {
	return f.registerOutput, f.registerErr
}

func (f *fakeStreamAPI) ListStreamConsumers(_ context.Context, params *kinesis.ListStreamConsumersInput, _ ...func(*kinesis.Options)) (*kinesis.ListStreamConsumersOutput, error) {
	f.listConsumersInputs = append(f.listConsumersInputs, params)
	page := f.listConsumersPages[0]
	f.listConsumersPages = f.listConsumersPages[1:]
	return page, nil
}

func Test_DescribeStream_NotFound_MapsToSentinel(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		describeSummaryErr: &types.ResourceNotFoundException{Message: aws.String("Stream ingest-events under account 123456789012 not found.")},
	}
	gateway := NewGateway(api, Config{})

	// Act
	_, err := gateway.DescribeStream(t.Context(), testStream)

	// Assert
	require.ErrorIs(t, err, provisioner.ErrStreamNotFound)
}

func Test_DescribeStream_OperationError_MapsToSentinel(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		describeSummaryErr: &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "Stream not found"},
	}
	gateway := NewGateway(api, Config{})

	// Act
	_, err := gateway.DescribeStream(t.Context(), testStream)

	// Assert
	require.ErrorIs(t, err, provisioner.ErrStreamNotFound)
}

func Test_DescribeStream_Active_MapsSummaryFields(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		describeSummaryOutput: &kinesis.DescribeStreamSummaryOutput{
			StreamDescriptionSummary: &types.StreamDescriptionSummary{
				StreamARN:      aws.String(testStreamARN),
				StreamName:     aws.String(testStream),
				StreamStatus:   types.StreamStatusActive,
				EncryptionType: types.EncryptionTypeKms,
				KeyId:          aws.String("alias/aws/kinesis"),
			},
		},
	}
	gateway := NewGateway(api, Config{})

	// Act
	description, err := gateway.DescribeStream(t.Context(), testStream)

	// Assert
	require.NoError(t, err)
	require.Equal(t, testStreamARN, description.ARN)
	require.Equal(t, provisioner.StreamStatusActive, description.Status)
	require.Equal(t, provisioner.EncryptionTypeKMS, description.Encryption)
	require.Equal(t, "alias/aws/kinesis", description.KeyID)
}

func Test_ListTagsForStream_MultiplePages_MergesAllTags(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		listTagsPages: []*kinesis.ListTagsForStreamOutput{
			{
				Tags: []types.Tag{
					{Key: aws.String("team"), Value: aws.String("ingest")},
					{Key: aws.String("env"), Value: aws.String("prod")},
				},
				HasMoreTags: aws.Bool(true),
			},
			{
				Tags: []types.Tag{
					{Key: aws.String("owner"), Value: aws.String("data-platform")},
				},
				HasMoreTags: aws.Bool(false),
			},
		},
	}
	gateway := NewGateway(api, Config{})

	// Act
	tags, err := gateway.ListTagsForStream(t.Context(), testStream)

	// Assert
	require.NoError(t, err)
	require.Equal(t, provisioner.TagSet{"team": "ingest", "env": "prod", "owner": "data-platform"}, tags)

	require.Len(t, api.listTagsInputs, 2)
	require.Nil(t, api.listTagsInputs[0].ExclusiveStartTagKey)
	require.Equal(t, "env", aws.ToString(api.listTagsInputs[1].ExclusiveStartTagKey))
}

func Test_AddTagsToStream_OverTagLimit_SplitsIntoBatches(t *testing.T) {
	// Arrange
	tags := make(provisioner.TagSet, 12)
	for i := 0; i < 12; i++ {
		tags[fmt.Sprintf("key-%02d", i)] = fmt.Sprintf("value-%02d", i)
	}
	api := &fakeStreamAPI{}
	gateway := NewGateway(api, Config{})

	// Act
	err := gateway.AddTagsToStream(t.Context(), testStream, tags)

	// Assert
	require.NoError(t, err)
	require.Len(t, api.addTagsInputs, 2)

	written := make(map[string]string)
	for _, input := range api.addTagsInputs {
		require.LessOrEqual(t, len(input.Tags), maxTagsPerCall)
		require.Equal(t, testStream, aws.ToString(input.StreamName))
		for key, value := range input.Tags {
			written[key] = value
		}
	}
	require.Equal(t, map[string]string(tags), written)
}

func Test_ListShards_MultiplePages_DropsStreamNameOnTokenPages(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		listShardsPages: []*kinesis.ListShardsOutput{
			{
				Shards: []types.Shard{
					{
						ShardId:             aws.String("shardId-000000000000"),
						SequenceNumberRange: &types.SequenceNumberRange{StartingSequenceNumber: aws.String("100")},
					},
				},
				NextToken: aws.String("token-1"),
			},
			{
				Shards: []types.Shard{
					{
						ShardId:             aws.String("shardId-000000000001"),
						ParentShardId:       aws.String("shardId-000000000000"),
						SequenceNumberRange: &types.SequenceNumberRange{StartingSequenceNumber: aws.String("200")},
					},
				},
			},
		},
	}
	gateway := NewGateway(api, Config{})

	// Act
	records, err := gateway.ListShards(t.Context(), testStream)

	// Assert
	require.NoError(t, err)
	require.Equal(t, []provisioner.ShardRecord{
		{ID: "shardId-000000000000", StartingSequenceNumber: "100"},
		{ID: "shardId-000000000001", ParentID: "shardId-000000000000", StartingSequenceNumber: "200"},
	}, records)

	require.Len(t, api.listShardsInputs, 2)
	require.Equal(t, testStream, aws.ToString(api.listShardsInputs[0].StreamName))
	require.Nil(t, api.listShardsInputs[1].StreamName)
	require.Equal(t, "token-1", aws.ToString(api.listShardsInputs[1].NextToken))
}

func Test_RegisterStreamConsumer_MapsConsumerFields(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		registerOutput: &kinesis.RegisterStreamConsumerOutput{
			Consumer: &types.Consumer{
				ConsumerName:   aws.String("analytics"),
				ConsumerARN:    aws.String(testStreamARN + "/consumer/analytics"),
				ConsumerStatus: types.ConsumerStatusCreating,
			},
		},
	}
	gateway := NewGateway(api, Config{})

	// Act
	consumer, err := gateway.RegisterStreamConsumer(t.Context(), testStreamARN, "analytics")

	// Assert
	require.NoError(t, err)
	require.Equal(t, provisioner.EnhancedConsumer{
		Name:   "analytics",
		ARN:    testStreamARN + "/consumer/analytics",
		Status: provisioner.ConsumerStatusCreating,
	}, consumer)
}

func Test_ListStreamConsumers_MultiplePages_KeepsStreamARN(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{
		listConsumersPages: []*kinesis.ListStreamConsumersOutput{
			{
				Consumers: []types.Consumer{
					{ConsumerName: aws.String("analytics"), ConsumerStatus: types.ConsumerStatusActive},
				},
				NextToken: aws.String("token-1"),
			},
			{
				Consumers: []types.Consumer{
					{ConsumerName: aws.String("audit"), ConsumerStatus: types.ConsumerStatusCreating},
				},
			},
		},
	}
	gateway := NewGateway(api, Config{})

	// Act
	consumers, err := gateway.ListStreamConsumers(t.Context(), testStreamARN)

	// Assert
	require.NoError(t, err)
	require.Len(t, consumers, 2)
	require.Equal(t, "analytics", consumers[0].Name)
	require.Equal(t, provisioner.ConsumerStatusCreating, consumers[1].Status)

	require.Len(t, api.listConsumersInputs, 2)
	require.Equal(t, testStreamARN, aws.ToString(api.listConsumersInputs[0].StreamARN))
	require.Equal(t, testStreamARN, aws.ToString(api.listConsumersInputs[1].StreamARN))
	require.Equal(t, "token-1", aws.ToString(api.listConsumersInputs[1].NextToken))
}

func Test_CreateStream_PassesShardCount(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{}
	gateway := NewGateway(api, Config{})

	// Act
	err := gateway.CreateStream(t.Context(), testStream, 4)

	// Assert
	require.NoError(t, err)
	require.Len(t, api.createInputs, 1)
	require.Equal(t, testStream, aws.ToString(api.createInputs[0].StreamName))
	require.Equal(t, int32(4), aws.ToInt32(api.createInputs[0].ShardCount))
}

func Test_StartStreamEncryption_PassesTypeAndKey(t *testing.T) {
	// Arrange
	api := &fakeStreamAPI{}
	gateway := NewGateway(api, Config{})

	// Act
	err := gateway.StartStreamEncryption(t.Context(), testStream, provisioner.EncryptionTypeKMS, "alias/ingest-key")

	// Assert
	require.NoError(t, err)
	require.Len(t, api.encryptionInputs, 1)
	require.Equal(t, types.EncryptionTypeKms, api.encryptionInputs[0].EncryptionType)
	require.Equal(t, "alias/ingest-key", aws.ToString(api.encryptionInputs[0].KeyId))
}
