package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelias/circlemode"
	"github.com/spf13/viper"
)

// Config holds the circle2json settings.
type Config struct {
	// Steps is handed to the mode as is, values below the minimum are
	// clamped there with a warning.
	Steps    int    `mapstructure:"steps"`
	LevelDB  string `mapstructure:"leveldb"`
	Sync     bool   `mapstructure:"sync"`
	Tooltips bool   `mapstructure:"tooltips"`
}

// Load reads configuration from defaults, an optional config file and
// CIRCLE2JSON_* environment variables, in increasing priority. Flags bound
// on v take precedence over all of them.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("steps", circlemode.DefaultSteps)
	v.SetDefault("leveldb", "")
	v.SetDefault("sync", false)
	v.SetDefault("tooltips", false)

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("circle2json")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// CIRCLE2JSON_LEVELDB -> leveldb
	v.SetEnvPrefix("CIRCLE2JSON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the settings are consistent.
func (c *Config) Validate() error {
	var errs []string

	if c.Sync && c.LevelDB == "" {
		errs = append(errs, "sync requires leveldb")
	}
	if c.Steps > circlemode.MaxSteps {
		errs = append(errs, fmt.Sprintf("steps must be at most %d, got %d", circlemode.MaxSteps, c.Steps))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ModeConfig - the mode options derived from the settings
func (c *Config) ModeConfig() *circlemode.ModeConfig {
	return &circlemode.ModeConfig{Steps: circlemode.StepCount(c.Steps)}
}
