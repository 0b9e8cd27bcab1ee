package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the suggestion CLI
type Config struct {
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Suggest    SuggestConfig    `mapstructure:"suggest"`
	Log        LogConfig        `mapstructure:"log"`
}

// VocabularyConfig describes the file the tree is loaded from
type VocabularyConfig struct {
	Path      string `mapstructure:"path"`
	Separator string `mapstructure:"separator"`
}

// SuggestConfig holds query related configuration
type SuggestConfig struct {
	// Limit caps the suggestions printed per prefix; 0 means unlimited.
	Limit int `mapstructure:"limit"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig loads configuration from file and environment variables.
// Environment variables use the TST_ prefix, e.g. TST_SUGGEST_LIMIT.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	v.SetEnvPrefix("tst")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("vocabulary.path", "")
	v.SetDefault("vocabulary.separator", "\t")

	v.SetDefault("suggest.limit", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Vocabulary.Path == "" {
		return errors.New("vocabulary path is required")
	}
	if c.Vocabulary.Separator == "" {
		return errors.New("vocabulary separator cannot be empty")
	}
	if c.Suggest.Limit < 0 {
		return errors.Errorf("invalid suggest limit: %d", c.Suggest.Limit)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the zerolog level named by the configuration.
func (c *LogConfig) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", c.Level)
	}
	return level, nil
}
