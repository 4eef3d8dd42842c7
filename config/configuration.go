package config

import (
	"github.com/crispmark/lifion-kinesis/configuration/conf"
	"github.com/crispmark/lifion-kinesis/services/health"
	"github.com/crispmark/lifion-kinesis/services/kinesis"
	"github.com/crispmark/lifion-kinesis/telemetry"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {

	// ProbesConfiguration holds the configuration for health probes.
	ProbesConfiguration health.ProbesConfig `mapstructure:"probes,omitempty"`

	// Telemetry holds the logging and metrics endpoint settings.
	Telemetry telemetry.Config `mapstructure:"telemetry,omitempty"`

	PeriodicMetricsReporterConfiguration telemetry.PeriodicMetricsReporterConfig `mapstructure:"periodic-metrics-reporter,omitempty"`

	// Kinesis holds the connection and waiter settings of the stream gateway.
	Kinesis kinesis.Config `mapstructure:"kinesis,omitempty"`

	// Operator holds the KinesisStream controller settings.
	Operator conf.KinesisStreamOperatorConfiguration `mapstructure:"operator,omitempty"`
}
