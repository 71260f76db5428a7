// Package config provides configuration management for habrreader.
// Values come from a YAML file, environment variables and flags merged by
// viper; Load decodes them into typed sections and validates the result.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/habrreader/internal/config/habr"
	"github.com/jonesrussell/habrreader/internal/config/server"
	"github.com/jonesrussell/habrreader/internal/config/types"
	"github.com/jonesrussell/habrreader/internal/logger"
)

// Interface defines the interface for configuration access.
type Interface interface {
	// GetHabrConfig returns the client configuration.
	GetHabrConfig() *habr.Config
	// GetSelectors returns the markup selectors.
	GetSelectors() types.Selectors
	// GetLoggerConfig returns the logger configuration.
	GetLoggerConfig() *logger.Config
	// GetServerConfig returns the HTTP server configuration.
	GetServerConfig() *server.Config
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// Config represents the application configuration.
type Config struct {
	// Habr holds client configuration
	Habr *habr.Config `yaml:"habr" mapstructure:"habr"`
	// Selectors holds the markup compatibility contract
	Selectors types.Selectors `yaml:"selectors" mapstructure:"selectors"`
	// Logger holds logging configuration
	Logger *logger.Config `yaml:"logger" mapstructure:"logger"`
	// Server holds configuration for the serve command
	Server *server.Config `yaml:"server" mapstructure:"server"`
}

// New returns a configuration populated with defaults.
func New() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load decodes the merged viper state into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &LoadError{Source: v.ConfigFileUsed(), Err: err}
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults fills nil sections and empty selector groups.
func setDefaults(cfg *Config) {
	if cfg.Habr == nil {
		cfg.Habr = habr.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = &logger.Config{}
	}
	cfg.Logger.SetDefaults()
	if cfg.Server == nil {
		cfg.Server = server.NewConfig()
	}

	defaults := types.DefaultSelectors()
	if cfg.Selectors.Listing == (types.ListingSelectors{}) {
		cfg.Selectors.Listing = defaults.Listing
	}
	if cfg.Selectors.Article == (types.ArticleSelectors{}) {
		cfg.Selectors.Article = defaults.Article
	}
	if cfg.Selectors.Comments == (types.CommentSelectors{}) {
		cfg.Selectors.Comments = defaults.Comments
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Habr.Validate(); err != nil {
		return &ValidationError{Section: "habr", Err: err}
	}
	if err := c.Selectors.Validate(); err != nil {
		return &ValidationError{Section: "selectors", Err: err}
	}
	if err := c.Logger.Validate(); err != nil {
		return &ValidationError{Section: "logger", Err: err}
	}
	if err := c.Server.Validate(); err != nil {
		return &ValidationError{Section: "server", Err: err}
	}
	return nil
}

// GetHabrConfig returns the client configuration.
func (c *Config) GetHabrConfig() *habr.Config { return c.Habr }

// GetSelectors returns the markup selectors.
func (c *Config) GetSelectors() types.Selectors { return c.Selectors }

// GetLoggerConfig returns the logger configuration.
func (c *Config) GetLoggerConfig() *logger.Config { return c.Logger }

// GetServerConfig returns the HTTP server configuration.
func (c *Config) GetServerConfig() *server.Config { return c.Server }

// String renders the section names for debugging.
func (c *Config) String() string {
	return fmt.Sprintf("config{habr=%s locale=%s server=%s}", c.Habr.BaseURL, c.Habr.Locale, c.Server.Address)
}
