// Package errors provides custom error types for the skymap system.
// These errors enable programmatic error checking across the catalog
// build pipeline and distinguish recoverable parse anomalies from
// fatal I/O and serialization failures.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the skymap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates that a catalog source could not be retrieved
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDanglingReference indicates a cross-reference pointing outside any known block
	ErrDanglingReference = errors.New("dangling cross-reference")

	// ErrSealed indicates an attempt to mutate a registry block that is already sealed
	ErrSealed = errors.New("registry block sealed")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ParseError represents a failure to parse catalog source text
type ParseError struct {
	Source  string // Logical source name (e.g. "fk5", "bsc")
	Line    int    // 1-based line number, 0 if unknown
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s line %d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(source string, line int, message string, err error) *ParseError {
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

// IOError represents a filesystem or stream I/O failure.
// Any IOError during a build is fatal: a half-written catalog is
// unusable by readers that rely on exact block boundaries.
type IOError struct {
	Operation string // e.g. "read", "write", "create"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// SourceError represents a failure retrieving a catalog source
type SourceError struct {
	Source     string // Logical source name
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source %s (status %d): %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("source %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ConfigError represents a configuration problem
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("config %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// WrapIO wraps an error as an IOError, returning nil if err is nil
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError, returning nil if err is nil
func WrapParse(source string, line int, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(source, line, err.Error(), err)
}

// WrapSource wraps an error as a SourceError, returning nil if err is nil
func WrapSource(source, url string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, URL: url, Message: err.Error(), Err: err}
}
