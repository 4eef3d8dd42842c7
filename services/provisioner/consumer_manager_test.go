package provisioner_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/crispmark/lifion-kinesis/services/provisioner"
	"github.com/crispmark/lifion-kinesis/tests/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const consumerName = "test-consumer"

var consumerARN = streamARN + "/consumer/" + consumerName

func consumer(status provisioner.ConsumerStatus) provisioner.EnhancedConsumer {
	return provisioner.EnhancedConsumer{Name: consumerName, ARN: consumerARN, Status: status}
}

func newManager(gateway provisioner.Gateway) *provisioner.EnhancedConsumerManager {
	return provisioner.NewEnhancedConsumerManager(gateway, time.Millisecond)
}

func Test_RegisterStreamConsumer_ImmediatelyActive_SkipsPolling(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().RegisterStreamConsumer(gomock.Any(), streamARN, consumerName).
		Return(consumer(provisioner.ConsumerStatusActive), nil)

	manager := newManager(gateway)

	// Act
	err := manager.RegisterStreamConsumer(t.Context(), streamARN, consumerName)

	// Assert
	require.NoError(t, err)
}

func Test_RegisterStreamConsumer_ActivatesAfterPolling_Succeeds(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().RegisterStreamConsumer(gomock.Any(), streamARN, consumerName).
		Return(consumer(provisioner.ConsumerStatusCreating), nil)
	gomock.InOrder(
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{consumer(provisioner.ConsumerStatusCreating)}, nil),
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{consumer(provisioner.ConsumerStatusActive)}, nil),
	)

	manager := newManager(gateway)

	// Act
	err := manager.RegisterStreamConsumer(t.Context(), streamARN, consumerName)

	// Assert
	require.NoError(t, err)
}

func Test_RegisterStreamConsumer_MissingMidPoll_KeepsPolling(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().RegisterStreamConsumer(gomock.Any(), streamARN, consumerName).
		Return(consumer(provisioner.ConsumerStatusCreating), nil)
	gomock.InOrder(
		// the freshly registered consumer is not visible in the listing yet
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{}, nil),
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{
				{Name: "other-consumer", ARN: streamARN + "/consumer/other-consumer", Status: provisioner.ConsumerStatusActive},
			}, nil),
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{consumer(provisioner.ConsumerStatusActive)}, nil),
	)

	manager := newManager(gateway)

	// Act
	err := manager.RegisterStreamConsumer(t.Context(), streamARN, consumerName)

	// Assert
	require.NoError(t, err)
}

func Test_RegisterStreamConsumer_RegisterFails_PropagatesError(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().RegisterStreamConsumer(gomock.Any(), streamARN, consumerName).
		Return(provisioner.EnhancedConsumer{}, fmt.Errorf("consumer limit reached"))

	manager := newManager(gateway)

	// Act
	err := manager.RegisterStreamConsumer(t.Context(), streamARN, consumerName)

	// Assert
	require.ErrorContains(t, err, "consumer limit reached")
}

func Test_RegisterStreamConsumer_ListFailsMidPoll_PropagatesError(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().RegisterStreamConsumer(gomock.Any(), streamARN, consumerName).
		Return(consumer(provisioner.ConsumerStatusCreating), nil)
	gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
		Return(nil, fmt.Errorf("access denied"))

	manager := newManager(gateway)

	// Act
	err := manager.RegisterStreamConsumer(t.Context(), streamARN, consumerName)

	// Assert
	require.ErrorContains(t, err, "access denied")
}

func Test_GetEnhancedConsumers_AllActive_ReturnsRegistry(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).Times(1).
		Return([]provisioner.EnhancedConsumer{
			consumer(provisioner.ConsumerStatusActive),
			{Name: "analytics", ARN: streamARN + "/consumer/analytics", Status: provisioner.ConsumerStatusActive},
		}, nil)

	manager := newManager(gateway)

	// Act
	registry, err := manager.GetEnhancedConsumers(t.Context(), streamARN)

	// Assert
	require.NoError(t, err)
	require.Len(t, registry, 2)
	require.Equal(t, consumerARN, registry[consumerName].ARN)
	require.Equal(t, provisioner.ConsumerStatusActive, registry["analytics"].Status)
}

func Test_GetEnhancedConsumers_ConvergesOnThirdListing_ReturnsActiveRegistry(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gomock.InOrder(
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{consumer(provisioner.ConsumerStatusCreating)}, nil),
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{consumer(provisioner.ConsumerStatusCreating)}, nil),
		gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
			Return([]provisioner.EnhancedConsumer{consumer(provisioner.ConsumerStatusActive)}, nil),
	)

	manager := newManager(gateway)

	// Act
	registry, err := manager.GetEnhancedConsumers(t.Context(), streamARN)

	// Assert
	require.NoError(t, err)
	require.Len(t, registry, 1)
	require.Equal(t, provisioner.ConsumerStatusActive, registry[consumerName].Status)
}

func Test_GetEnhancedConsumers_NoConsumers_ReturnsEmptyRegistry(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).Times(1).
		Return([]provisioner.EnhancedConsumer{}, nil)

	manager := newManager(gateway)

	// Act
	registry, err := manager.GetEnhancedConsumers(t.Context(), streamARN)

	// Assert
	require.NoError(t, err)
	require.Empty(t, registry)
}

func Test_GetEnhancedConsumers_ListFails_PropagatesError(t *testing.T) {
	// Arrange
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mocks.NewMockGateway(mockCtrl)
	gateway.EXPECT().ListStreamConsumers(gomock.Any(), streamARN).
		Return(nil, fmt.Errorf("stream deleted"))

	manager := newManager(gateway)

	// Act
	_, err := manager.GetEnhancedConsumers(t.Context(), streamARN)

	// Assert
	require.ErrorContains(t, err, "stream deleted")
}
