package plan

import (
	"fmt"

	"github.com/kbukum/enumkit/config"
	"github.com/kbukum/enumkit/errors"
	"github.com/kbukum/enumkit/validation"
)

// Config describes a named plan.
type Config struct {
	config.BaseConfig `yaml:",inline" mapstructure:",squash"`
	// Stages are applied in order, innermost first.
	Stages []Stage `yaml:"stages" mapstructure:"stages" validate:"dive"`
	// Expr is the compact form of Stages, used when Stages is empty.
	Expr string `yaml:"expr" mapstructure:"expr"`
}

// ApplyDefaults expands Expr and applies base defaults.
func (c *Config) ApplyDefaults() error {
	c.BaseConfig.ApplyDefaults()
	if len(c.Stages) == 0 && c.Expr != "" {
		stages, err := ParseStages(c.Expr)
		if err != nil {
			return err
		}
		c.Stages = stages
	}
	return nil
}

// Validate checks the base fields and every stage.
func (c *Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return errors.InvalidConfig(c.Name, err)
	}
	v := validation.New()
	v.MergeError(validation.Validate(c))
	for i, s := range c.Stages {
		sv := v.WithPrefix(fmt.Sprintf("stages[%d].", i))
		s.validate(sv)
		v.Merge(sv)
	}
	return v.Err()
}

// Load reads the plan called name through the config package, then applies
// defaults and validates it.
func Load(name string, opts ...config.LoaderOption) (*Config, error) {
	var cfg Config
	if err := config.Load(name, &cfg, opts...); err != nil {
		return nil, errors.InvalidConfig(name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
