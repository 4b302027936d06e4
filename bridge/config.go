package bridge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailored-agentic-units/ymvc/mvc"
	"gopkg.in/yaml.v3"
)

const (
	defaultAddress  = "127.0.0.1:8700"
	defaultLogLevel = "info"
)

// Config holds the parameters of a bridge process: where to listen, how
// verbosely to log, which app events to log through a command, and the
// facade it serves.
type Config struct {
	Address   string     `json:"address,omitempty" yaml:"address,omitempty"`
	LogLevel  string     `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogEvents []string   `json:"log_events,omitempty" yaml:"log_events,omitempty"`
	Facade    mvc.Config `json:"facade" yaml:"facade"`
}

// DefaultConfig returns a Config with defaults for every section.
func DefaultConfig() Config {
	return Config{
		Address:  defaultAddress,
		LogLevel: defaultLogLevel,
		Facade:   mvc.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Facade.Merge(&source.Facade)

	if source.Address != "" {
		c.Address = source.Address
	}
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
	if len(source.LogEvents) > 0 {
		c.LogEvents = source.LogEvents
	}
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// LoadConfig reads a JSON or YAML config file (chosen by extension), merges
// it with defaults, and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
