package provisioner

import (
	"context"
	"fmt"
	"time"

	"github.com/crispmark/lifion-kinesis/telemetry"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/klog/v2"
)

const defaultConsumerPollInterval = 3 * time.Second

// EnhancedConsumerManager registers enhanced fan-out consumers on a stream
// and tracks their activation. Consumer activation has no remote wait
// primitive, so the manager polls the consumer listing until the remote side
// converges; cancellation of the context is the only bound on that wait.
type EnhancedConsumerManager struct {
	gateway      Gateway
	pollInterval time.Duration
}

// NewEnhancedConsumerManager creates a new EnhancedConsumerManager instance.
// A non-positive pollInterval falls back to the default.
func NewEnhancedConsumerManager(gateway Gateway, pollInterval time.Duration) *EnhancedConsumerManager {
	if pollInterval <= 0 {
		pollInterval = defaultConsumerPollInterval
	}
	return &EnhancedConsumerManager{
		gateway:      gateway,
		pollInterval: pollInterval,
	}
}

// RegisterStreamConsumer registers an enhanced fan-out consumer and blocks
// until the remote side reports it ACTIVE. A consumer missing from a poll is
// treated as not yet visible, not as a failure.
func (m *EnhancedConsumerManager) RegisterStreamConsumer(ctx context.Context, streamARN string, consumerName string) error {
	logger := m.getLogger(ctx, streamARN).WithValues("consumer", consumerName)

	consumer, err := m.gateway.RegisterStreamConsumer(ctx, streamARN, consumerName)
	if err != nil {
		return fmt.Errorf("failed to register consumer %s: %w", consumerName, err)
	}

	telemetry.Increment(telemetry.GetClient(ctx), "kinesis.consumer.registered", map[string]string{"consumer": consumerName})
	logger.V(1).Info("consumer registered", "arn", consumer.ARN, "status", consumer.Status)

	if consumer.Active() {
		return nil
	}

	err = wait.PollUntilContextCancel(ctx, m.pollInterval, false, func(ctx context.Context) (bool, error) {
		current, err := m.findConsumer(ctx, streamARN, consumerName)
		if err != nil {
			return false, err
		}
		if !current.Active() {
			logger.V(2).Info("consumer is not active yet", "status", current.Status)
			return false, nil
		}
		logger.V(1).Info("consumer is active", "arn", current.ARN)
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("failed to wait for consumer %s to become active: %w", consumerName, err)
	}
	return nil
}

// GetEnhancedConsumers returns the stream's enhanced fan-out consumers keyed
// by name, blocking until every one of them is ACTIVE. A stream with no
// consumers returns an empty registry immediately.
func (m *EnhancedConsumerManager) GetEnhancedConsumers(ctx context.Context, streamARN string) (ConsumerRegistry, error) {
	logger := m.getLogger(ctx, streamARN)

	var registry ConsumerRegistry
	err := wait.PollUntilContextCancel(ctx, m.pollInterval, true, func(ctx context.Context) (bool, error) {
		consumers, err := m.gateway.ListStreamConsumers(ctx, streamARN)
		if err != nil {
			return false, err
		}

		registry = make(ConsumerRegistry, len(consumers))
		allActive := true
		for _, consumer := range consumers {
			registry[consumer.Name] = consumer
			if !consumer.Active() {
				allActive = false
			}
		}

		if !allActive {
			logger.V(2).Info("waiting for consumers to become active", "consumers", len(registry))
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wait for consumers of %s to become active: %w", streamARN, err)
	}
	return registry, nil
}

func (m *EnhancedConsumerManager) findConsumer(ctx context.Context, streamARN string, consumerName string) (EnhancedConsumer, error) {
	consumers, err := m.gateway.ListStreamConsumers(ctx, streamARN)
	if err != nil {
		return EnhancedConsumer{}, err
	}
	for _, consumer := range consumers {
		if consumer.Name == consumerName {
			return consumer, nil
		}
	}
	return EnhancedConsumer{}, nil
}

func (m *EnhancedConsumerManager) getLogger(ctx context.Context, streamARN string) klog.Logger {
	return klog.FromContext(ctx).
		WithName("EnhancedConsumerManager").
		WithValues("streamArn", streamARN)
}
