package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"stompwire/pkg/stomp"
)

type Config struct {
	// ProtocolVersion is the revision assumed when a command does not name one
	ProtocolVersion string `env:"STOMP_PROTOCOL_VERSION" toml:"protocol_version"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" toml:"log_level"`   // zerolog level name
	LogFormat string `env:"LOG_FORMAT" toml:"log_format"` // text or json
}

// Load builds the configuration in three layers: defaults, then an optional
// TOML file named by STOMPWIRE_CONFIG, then environment overrides.
func Load() (*Config, error) {
	// .env is optional; system env vars still apply without it
	_ = godotenv.Load(".env")

	cfg := &Config{
		ProtocolVersion: stomp.NewestVersion.String(),
		LogLevel:        "info",
		LogFormat:       "text",
	}

	if path := os.Getenv("STOMPWIRE_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	loadEnvString(&cfg.ProtocolVersion, "STOMP_PROTOCOL_VERSION")
	loadEnvString(&cfg.LogLevel, "LOG_LEVEL")
	loadEnvString(&cfg.LogFormat, "LOG_FORMAT")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured default revision is one the tool can
// reason about and that the log settings name known modes.
func (c *Config) Validate() error {
	v, err := stomp.ParseVersion(c.ProtocolVersion)
	if err != nil {
		return fmt.Errorf("invalid protocol version: %w", err)
	}
	switch v {
	case stomp.Version10, stomp.Version11, stomp.Version12:
	default:
		return fmt.Errorf("unsupported protocol version %q", c.ProtocolVersion)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// Version returns the configured default revision. Load has already
// validated it, so parse failures cannot happen here.
func (c *Config) Version() stomp.Version {
	v, _ := stomp.ParseVersion(c.ProtocolVersion)
	return v
}

func loadEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
