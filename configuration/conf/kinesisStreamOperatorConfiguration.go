package conf

import "time"

// KinesisStreamOperatorConfiguration holds configuration for the KinesisStream controller.
type KinesisStreamOperatorConfiguration struct {

	// MaxConcurrentReconciles is the number of KinesisStream resources reconciled in parallel.
	MaxConcurrentReconciles int `mapstructure:"max-concurrent-reconciles,omitempty"`

	// SyncInterval is the interval between periodic re-reconciliations of a settled resource.
	SyncInterval time.Duration `mapstructure:"sync-interval,omitempty"`

	// StaticTags are merged onto every managed stream in addition to the tags declared on the resource.
	StaticTags map[string]string `mapstructure:"static-tags,omitempty"`

	// RateLimiting holds the rate limiting configuration
	RateLimiting RateLimitConfiguration `mapstructure:"rate-limiting,omitempty"`
}
