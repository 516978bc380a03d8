// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/generator"
	"github.com/faspi/cli/internal/update"
)

// Config represents the faspi CLI configuration.
// Loaded from ~/.faspi/config.yaml and FASPI_* environment variables.
type Config struct {
	// UpdateCheck enables the release check after generation commands.
	// Env: FASPI_UPDATE_CHECK, Default: true
	UpdateCheck bool `mapstructure:"update_check" yaml:"update_check"`

	// UpdateURL is the GitHub-style releases endpoint.
	// Env: FASPI_UPDATE_URL
	UpdateURL string `mapstructure:"update_url" yaml:"update_url"`

	// UpdateTimeout bounds the release check.
	// Env: FASPI_UPDATE_TIMEOUT, Default: 5s
	UpdateTimeout time.Duration `mapstructure:"update_timeout" yaml:"update_timeout"`

	// DefaultMethod is the HTTP method for `make route` without --method.
	// Env: FASPI_DEFAULT_METHOD, Default: GET
	DefaultMethod string `mapstructure:"default_method" yaml:"default_method"`

	// Interactive enables feature prompts for `new` on terminals.
	// Env: FASPI_INTERACTIVE, Default: true
	Interactive bool `mapstructure:"interactive" yaml:"interactive"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `faspi config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		UpdateCheck:   true,
		UpdateURL:     update.DefaultURL,
		UpdateTimeout: update.DefaultTimeout,
		DefaultMethod: generator.DefaultMethod,
		Interactive:   true,
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := generator.NormalizeMethod(c.DefaultMethod); err != nil {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("default_method %q is not a supported HTTP method", c.DefaultMethod),
			"use one of "+strings.Join(generator.ValidMethods, ", "),
		)
	}

	if c.UpdateTimeout < 0 {
		return oerrors.NewConfigurationError("update_timeout must not be negative", "")
	}
	return nil
}

// Marshal encodes c as the YAML written by `faspi config init`.
func (c *Config) Marshal() ([]byte, error) {
	doc := struct {
		UpdateCheck   bool   `yaml:"update_check"`
		UpdateURL     string `yaml:"update_url"`
		UpdateTimeout string `yaml:"update_timeout"`
		DefaultMethod string `yaml:"default_method"`
		Interactive   bool   `yaml:"interactive"`
	}{
		UpdateCheck:   c.UpdateCheck,
		UpdateURL:     c.UpdateURL,
		UpdateTimeout: c.UpdateTimeout.String(),
		DefaultMethod: c.DefaultMethod,
		Interactive:   c.Interactive,
	}

	var sb strings.Builder
	sb.WriteString("# faspi configuration\n")
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return []byte(sb.String()), nil
}
