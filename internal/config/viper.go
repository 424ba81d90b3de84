package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Registry struct {
		// File is an optional YAML bank-registry override. Empty means the
		// built-in registry.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"registry" yaml:"registry"`

	Export struct {
		Directory      string `mapstructure:"directory" yaml:"directory"`
		Format         string `mapstructure:"format" yaml:"format"`
		FilenamePrefix string `mapstructure:"filename_prefix" yaml:"filename_prefix"`
		CSVDelimiter   string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SWIFTBATCH_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.swift-batch")
	v.AddConfigPath(".swift-batch")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SWIFTBATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("registry.file", "")

	v.SetDefault("export.directory", ".")
	v.SetDefault("export.format", "xlsx")
	v.SetDefault("export.filename_prefix", "")
	v.SetDefault("export.csv_delimiter", ",")
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	switch config.Export.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("unsupported export format: %s. Supported formats are 'xlsx', 'csv'", config.Export.Format)
	}

	if len(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.Export.CSVDelimiter)
	}

	return nil
}
