package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix namespaces environment overrides, e.g.
// LIFION_KINESIS__OPERATOR__SYNC_INTERVAL for operator__sync-interval.
const EnvPrefix = "LIFION_KINESIS_"

const defaultConfigFile = "appconfig.yaml"

// configFile resolves the config file for the current
// APPLICATION_ENVIRONMENT, falling back to the default file when no
// environment-specific one is present on disk.
func configFile(logger klog.Logger) (string, error) {
	environment := strings.ToLower(os.Getenv("APPLICATION_ENVIRONMENT"))
	candidate := fmt.Sprintf("appconfig.%s.yaml", environment)

	switch _, err := os.Stat(candidate); {
	case err == nil:
		return candidate, nil
	case os.IsNotExist(err):
		logger.Info("no environment specific config found, loading default appconfig.yaml")
		return defaultConfigFile, nil
	default: // coverage-ignore
		return "", err
	}
}

// LoadConfig reads the application config file and environment overrides
// into a typed configuration struct. Nested keys use the "__" delimiter so
// they survive the environment variable character set.
func LoadConfig[T any](ctx context.Context) (*T, error) {
	loader := viper.NewWithOptions(viper.KeyDelimiter("__"))
	loader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	loader.SetEnvPrefix(EnvPrefix)
	loader.AllowEmptyEnv(true)
	loader.AutomaticEnv()

	file, err := configFile(klog.FromContext(ctx))
	if err != nil { // coverage-ignore
		return nil, fmt.Errorf("error checking config for existence: %w", err)
	}
	loader.SetConfigFile(file)

	if err := loader.ReadInConfig(); err != nil { // coverage-ignore
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var appConfig T
	if err := loader.Unmarshal(&appConfig); err != nil { // coverage-ignore
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &appConfig, nil
}
