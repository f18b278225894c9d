// Package config loads the pstore CLI configuration.
//
// Settings come from an optional YAML file plus command-line flags;
// flags win wherever both are set.
package config

import (
	"fmt"
	"os"

	pserrors "github.com/systmms/paramstore/internal/errors"
	"github.com/systmms/paramstore/internal/logging"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
// A missing file at this path is not an error.
const DefaultPath = "pstore.yaml"

// Config holds the runtime configuration of the CLI: the parsed config
// file plus the flag overrides filled in by the root command.
type Config struct {
	Path   string
	Logger *logging.Logger

	// Flag overrides. Empty / false means "not set on the command line".
	FlagRegion  string
	FlagProfile string
	FlagGroup   string
	FlagNoClean bool
	FlagDebug   bool

	file   File
	loaded bool
}

// File is the pstore.yaml structure.
type File struct {
	Region     string `yaml:"region"`
	Profile    string `yaml:"profile,omitempty"`
	Group      string `yaml:"group,omitempty"`
	CleanNames *bool  `yaml:"clean_names,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
}

// Load reads and parses the config file. A missing file is only an
// error when an explicit --config path was given.
func (c *Config) Load() error {
	if c.loaded {
		return nil
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			if c.Path == DefaultPath {
				c.loaded = true
				return nil
			}
			return pserrors.UserError{
				Message:    fmt.Sprintf("Config file not found: %s", c.Path),
				Suggestion: "Check the --config path, or omit it to rely on flags alone",
			}
		}
		return pserrors.UserError{
			Message: fmt.Sprintf("Failed to read config file: %s", c.Path),
			Details: err.Error(),
		}
	}

	if err := yaml.Unmarshal(data, &c.file); err != nil {
		return pserrors.ConfigError{
			Field:      c.Path,
			Message:    "Invalid YAML format",
			Suggestion: "Check for indentation errors and missing quotes",
		}
	}

	c.loaded = true
	return nil
}

// Region returns the effective AWS region.
func (c *Config) Region() string {
	if c.FlagRegion != "" {
		return c.FlagRegion
	}
	return c.file.Region
}

// Profile returns the effective shared AWS config profile.
func (c *Config) Profile() string {
	if c.FlagProfile != "" {
		return c.FlagProfile
	}
	return c.file.Profile
}

// Group returns the effective parameter group prefix.
func (c *Config) Group() string {
	if c.FlagGroup != "" {
		return c.FlagGroup
	}
	return c.file.Group
}

// CleanNames returns the effective clean-names toggle. Cleaning is on
// unless disabled by --no-clean or clean_names: false in the file.
func (c *Config) CleanNames() bool {
	if c.FlagNoClean {
		return false
	}
	if c.file.CleanNames != nil {
		return *c.file.CleanNames
	}
	return true
}

// Debug returns the effective debug-logging toggle.
func (c *Config) Debug() bool {
	return c.FlagDebug || c.file.Debug
}
