package kinesis

import "time"

// Config holds the connection and waiter settings of the Kinesis gateway.
type Config struct {

	// Region is the AWS region of the managed streams. When empty the
	// ambient AWS configuration decides.
	Region string `mapstructure:"region,omitempty"`

	// Endpoint overrides the service endpoint, e.g. for kinesalite or
	// LocalStack in local setups.
	Endpoint string `mapstructure:"endpoint,omitempty"`

	// WaiterMaxWait bounds a single wait for a stream to become active or to
	// disappear.
	WaiterMaxWait time.Duration `mapstructure:"waiter-max-wait,omitempty"`

	// WaiterPollInterval is the delay between stream status checks while
	// waiting.
	WaiterPollInterval time.Duration `mapstructure:"waiter-poll-interval,omitempty"`

	// ConsumerPollInterval is the delay between listings while waiting for
	// enhanced fan-out consumers to become active.
	ConsumerPollInterval time.Duration `mapstructure:"consumer-poll-interval,omitempty"`
}
