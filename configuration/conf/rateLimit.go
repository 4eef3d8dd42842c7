package conf

import (
	"golang.org/x/time/rate"
	"time"
)

type RateLimitConfiguration struct {
	// RateLimitElementsPerSecond defines the number of elements added to the queue per second.
	RateLimitElementsPerSecond rate.Limit `mapstructure:"rate-limit-elements-per-second,omitempty"`

	// RateLimitElementsBurst defines the maximum burst size for the rate limiter.
	RateLimitElementsBurst int `mapstructure:"rate-limit-elements-burst,omitempty"`

	// FailureRateBaseDelay defines the base delay for exponential backoff on failures.
	FailureRateBaseDelay time.Duration `mapstructure:"failure-rate-base-delay,omitempty"`

	// FailureRateMaxDelay defines the maximum delay for exponential backoff on failures.
	FailureRateMaxDelay time.Duration `mapstructure:"failure-rate-max-delay,omitempty"`
}
