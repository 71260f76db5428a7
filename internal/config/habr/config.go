// Package habr provides configuration for the Habr retrieval client.
// It covers the target origin, locale path, transport limits and the
// pagination walk settings.
package habr

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Default configuration values
const (
	DefaultBaseURL            = "https://habr.com"
	DefaultLocale             = "ru"
	DefaultUserAgent          = "habrreader/1.0"
	DefaultTimeout            = 30 * time.Second
	DefaultMaxBodySize        = 10 * 1024 * 1024 // 10MB
	DefaultMaxRedirects       = 10
	DefaultListingConcurrency = 1
	DefaultPages              = 1
)

// Config represents the client configuration.
type Config struct {
	// BaseURL is the site origin every request is built from
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Locale is the language path segment ("ru", "en")
	Locale string `yaml:"locale" mapstructure:"locale"`
	// UserAgent is sent with every request
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// RequestTimeout bounds each HTTP round trip
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
	// MaxBodySize caps the response body in bytes
	MaxBodySize int64 `yaml:"max_body_size" mapstructure:"max_body_size"`
	// MaxRedirects is the redirect hop limit
	MaxRedirects int `yaml:"max_redirects" mapstructure:"max_redirects"`
	// ListingConcurrency is the number of listing pages fetched at once during a walk
	ListingConcurrency int `yaml:"listing_concurrency" mapstructure:"listing_concurrency"`
	// DefaultPages is the page count used when a walk does not specify one
	DefaultPages int `yaml:"default_pages" mapstructure:"default_pages"`
}

// New creates a new configuration with defaults, then applies opts.
func New(opts ...Option) *Config {
	cfg := &Config{
		BaseURL:            DefaultBaseURL,
		Locale:             DefaultLocale,
		UserAgent:          DefaultUserAgent,
		RequestTimeout:     DefaultTimeout,
		MaxBodySize:        DefaultMaxBodySize,
		MaxRedirects:       DefaultMaxRedirects,
		ListingConcurrency: DefaultListingConcurrency,
		DefaultPages:       DefaultPages,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Validate validates the client configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be absolute, got %q", c.BaseURL)
	}
	if c.Locale == "" {
		return errors.New("locale is required")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must be non-negative")
	}
	if c.MaxBodySize <= 0 {
		return errors.New("max_body_size must be positive")
	}
	if c.MaxRedirects < 1 {
		return errors.New("max_redirects must be positive")
	}
	if c.ListingConcurrency < 1 {
		return errors.New("listing_concurrency must be positive")
	}
	if c.DefaultPages < 1 {
		return errors.New("default_pages must be positive")
	}
	return nil
}

// Option is a function that configures a client configuration.
type Option func(*Config)

// WithBaseURL sets the site origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithLocale sets the locale path segment.
func WithLocale(locale string) Option {
	return func(c *Config) {
		c.Locale = locale
	}
}

// WithUserAgent sets the user agent.
func WithUserAgent(agent string) Option {
	return func(c *Config) {
		c.UserAgent = agent
	}
}

// WithRequestTimeout sets the request timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.RequestTimeout = timeout
	}
}

// WithListingConcurrency sets how many listing pages are fetched at once.
func WithListingConcurrency(n int) Option {
	return func(c *Config) {
		c.ListingConcurrency = n
	}
}
