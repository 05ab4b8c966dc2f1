// Package config provides configuration management for the interim CLI.
package config

import (
	"fmt"
	"time"

	"github.com/conradludgate/interim/pkg/core"
)

// Config holds all CLI configuration options.
type Config struct {
	Dialect string `koanf:"dialect"`
	Backend string `koanf:"backend"`
	Zone    string `koanf:"zone"`
	Format  string `koanf:"format"`
	Base    string `koanf:"base"`
	Verbose bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect = "uk"
	DefaultBackend = "systime"
	DefaultZone    = "Local"
	DefaultFormat  = time.RFC3339
)

// Backends lists the calendar backends the CLI can resolve against.
var Backends = []string{"systime", "civil", "epoch"}

// ParseDialect converts the configured dialect name.
func (c *Config) ParseDialect() (core.Dialect, error) {
	return core.ParseDialect(c.Dialect)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.ParseDialect(); err != nil {
		return err
	}
	for _, b := range Backends {
		if c.Backend == b {
			return nil
		}
	}
	return fmt.Errorf("unknown backend %q (expected one of %v)", c.Backend, Backends)
}
