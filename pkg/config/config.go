package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the runtime settings shared by the CLI commands.
type Config struct {
	// Output is the directory canonical CSVs are written into; empty means
	// next to each input file.
	Output string `mapstructure:"output"`
}

// Build loads configuration from an optional YAML file, TANGA_* environment
// variables and command-line flags, in increasing precedence.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TANGA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The implicit config.yaml is optional; an explicitly named file
		// must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}
