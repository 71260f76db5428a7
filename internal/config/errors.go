package config

import (
	"errors"
	"fmt"
)

// ErrConfigInvalid is matched by every ValidationError.
var ErrConfigInvalid = errors.New("invalid configuration")

// ValidationError represents an error in configuration validation
type ValidationError struct {
	Section string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %v", e.Section, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is matches ErrConfigInvalid.
func (e *ValidationError) Is(target error) bool { return target == ErrConfigInvalid }

// LoadError represents an error decoding configuration
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("failed to load config: %v", e.Err)
	}
	return fmt.Sprintf("failed to load config from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
