package fetcher

import "time"

// Default configuration values.
const (
	defaultUserAgent      = "habrreader/1.0"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxBodySize    = 10 * 1024 * 1024 // 10 MB
	defaultMaxRedirects   = 10
)

// Config holds fetcher configuration.
type Config struct {
	UserAgent      string
	RequestTimeout time.Duration
	MaxBodySize    int64
	MaxRedirects   int
}

// WithDefaults returns a copy of the config with default values applied for zero-value fields.
func (c Config) WithDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = defaultMaxBodySize
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = defaultMaxRedirects
	}
	return c
}
