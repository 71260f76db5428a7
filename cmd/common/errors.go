package common

import "errors"

var (
	// ErrLoggerRequired is returned when CommandDeps.Logger is nil
	ErrLoggerRequired = errors.New("logger is required")

	// ErrConfigRequired is returned when CommandDeps.Config is nil
	ErrConfigRequired = errors.New("config is required")

	// ErrInvalidArticleID is returned when a positional id argument is not a number
	ErrInvalidArticleID = errors.New("article id must be a positive integer")
)
