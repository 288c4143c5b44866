package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Constants
const (
	DefaultAddr         = ":8080"
	DefaultCalendarFile = "calendar_events.json"
	DefaultICSDomain    = "calendar.local"
	DefaultMaxBodyBytes = 64 << 10
	TmpSuffix           = ".tmp.json"
	FilePermissions     = 0644

	// EnvPrefix is prepended to every environment variable name
	EnvPrefix = "CALENDAR_"

	// Log formats
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"

	ICSProductID = "-//WB Services//Calendar API//EN"
)

// Config holds the server configuration
type Config struct {
	Addr         string `yaml:"addr" env:"ADDR"`
	DataFile     string `yaml:"data_file" env:"DATA_FILE"`
	LogFormat    string `yaml:"log_format" env:"LOG_FORMAT"`
	ICSDomain    string `yaml:"ics_domain" env:"ICS_DOMAIN"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	// Memory keeps events in memory only; nothing is written to DataFile
	Memory bool `yaml:"memory" env:"MEMORY"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Addr:         DefaultAddr,
		DataFile:     DefaultCalendarFile,
		LogFormat:    LogFormatAuto,
		ICSDomain:    DefaultICSDomain,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// LoadConfig resolves the configuration from defaults, the optional YAML
// file at path, and CALENDAR_* environment variables, in that order.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}
	if !c.Memory && c.DataFile == "" {
		return errors.New("data_file is required")
	}
	if c.ICSDomain == "" {
		return errors.New("ics_domain is required")
	}
	return nil
}
