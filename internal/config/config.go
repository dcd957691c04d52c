package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	FormatKea  = "kea"
	FormatYaml = "yaml"
)

// Config is one conversion run's configuration, merged from defaults,
// an optional YAML config file and DECANTER_* environment variables.
// CLI flags override on top in cmd.
type Config struct {
	Input    string `mapstructure:"input"`
	Output   string `mapstructure:"output"`
	Format   string `mapstructure:"format"`
	Report   string `mapstructure:"report"` // empty = stdout
	LogLevel string `mapstructure:"logLevel"`
	Strict   bool   `mapstructure:"strict"`
}

// Load reads the run configuration. path may be empty, in which case
// only defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	// every field needs a default so AutomaticEnv can surface it
	// through Unmarshal; viper only considers keys it already knows
	v.SetDefault("input", "")
	v.SetDefault("format", FormatKea)
	v.SetDefault("output", "reservations.json")
	v.SetDefault("report", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("strict", false)

	v.SetEnvPrefix("decanter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields cmd cannot default away.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file is required")
	}
	switch c.Format {
	case FormatKea, FormatYaml:
	default:
		return fmt.Errorf("unknown output format %q (want %q or %q)", c.Format, FormatKea, FormatYaml)
	}
	return nil
}
