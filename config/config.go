package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Version of imoptim
const Version = "0.1.0"

const envPrefix = "imoptim"

// errors
var (
	ErrMaxWidth = errors.New("max width must be greater than zero")
	ErrQuality  = errors.New("quality must be in 0..100")
	ErrSameRoot = errors.New("input and output roots must be different")
)

// Config is read from IMOPTIM_* environment variables
type Config struct {
	InputRoot  string `envconfig:"INPUT_ROOT" default:"croatiamontenegro"`
	OutputRoot string `envconfig:"OUTPUT_ROOT" default:"croatiamontenegro_optimized"`
	MaxWidth   uint   `envconfig:"MAX_WIDTH" default:"1200"`
	Quality    uint8  `envconfig:"QUALITY" default:"85"`
	// RenameExt writes outputs with a .jpg extension instead of the source one
	RenameExt bool `envconfig:"RENAME_EXT"`
	Develop   bool `envconfig:"DEVELOP"`
}

// Load processes the environment and validates the result
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate ...
func (c *Config) Validate() error {
	if c.MaxWidth == 0 {
		return ErrMaxWidth
	}
	if c.Quality > 100 {
		return ErrQuality
	}
	if c.InputRoot == "" || c.OutputRoot == "" {
		return fmt.Errorf("config: input and output roots are required")
	}
	if filepath.Clean(c.InputRoot) == filepath.Clean(c.OutputRoot) {
		return ErrSameRoot
	}
	return nil
}

// InDevelop ...
func (c *Config) InDevelop() bool {
	return c.Develop
}

// Usage prints the recognized environment variables
func Usage() error {
	var c Config
	return envconfig.Usage(envPrefix, &c)
}
