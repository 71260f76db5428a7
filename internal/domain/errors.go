package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the client matches exactly one
// of these through errors.Is.
var (
	// ErrNetwork is returned when the site cannot be reached or answers with a non-2xx status.
	ErrNetwork = errors.New("network error")
	// ErrParse is returned when a response or a link cannot be parsed.
	ErrParse = errors.New("parse error")
	// ErrExtraction is returned when an expected element is missing from a parsed page.
	ErrExtraction = errors.New("extraction error")
	// ErrEmptyResult is returned when a random pick has nothing to choose from.
	ErrEmptyResult = errors.New("empty result")
	// ErrInvalidArgument is returned for out-of-range page numbers and identifiers.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NetworkError describes a failed request.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is matches ErrNetwork.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ParseError describes input that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ExtractionError describes a structural element that was expected but absent.
type ExtractionError struct {
	URL      string
	Selector string
	Reason   string
}

func (e *ExtractionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("extract %q from %s: element not found", e.Selector, e.URL)
	}
	return fmt.Sprintf("extract %q from %s: %s", e.Selector, e.URL, e.Reason)
}

// Is matches ErrExtraction.
func (e *ExtractionError) Is(target error) bool { return target == ErrExtraction }
