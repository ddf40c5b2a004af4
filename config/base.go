package config

import (
	"fmt"

	"github.com/kbukum/enumkit/logger"
)

// BaseConfig contains the fields every enumkit configuration shares.
// Embed it with `mapstructure:",squash"` to lift its keys to the top level.
type BaseConfig struct {
	Name    string        `yaml:"name" mapstructure:"name"`
	Debug   bool          `yaml:"debug" mapstructure:"debug"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
