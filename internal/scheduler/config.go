package scheduler

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the daily trigger times for the open and close jobs
type Config struct {
	OpenAt  string `yaml:"open_at"`
	CloseAt string `yaml:"close_at"`

	openHour    int
	openMinute  int
	closeHour   int
	closeMinute int
}

// DefaultConfig opens schedules just after midnight and closes them just
// before the day ends
func DefaultConfig() *Config {
	cfg := &Config{OpenAt: "00:05", CloseAt: "23:55"}
	// Defaults always parse
	_ = cfg.parse()
	return cfg
}

// LoadConfig reads trigger times from a YAML file. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read scheduler config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scheduler config: %w", err)
	}
	if err := cfg.parse(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse() error {
	open, err := time.Parse("15:04", c.OpenAt)
	if err != nil {
		return fmt.Errorf("invalid open_at %q: %w", c.OpenAt, err)
	}
	cls, err := time.Parse("15:04", c.CloseAt)
	if err != nil {
		return fmt.Errorf("invalid close_at %q: %w", c.CloseAt, err)
	}
	c.openHour, c.openMinute = open.Hour(), open.Minute()
	c.closeHour, c.closeMinute = cls.Hour(), cls.Minute()
	return nil
}
