package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field    string
	Message  string
	Expected string
}

// Error returns the error message string.
//
// Returns:
//   - string: formatted error message with field name and expectation if available
func (e ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Expected != "" {
		msg = fmt.Sprintf("%s (expected %s)", msg, e.Expected)
	}
	return msg
}

// Validate checks the loaded configuration values.
//
// It performs the following operations:
//   - Rejects a negative concurrency limit
//   - Requires the registry to be an absolute http or https URL
//   - Requires the manifest to be a bare file name
//
// Returns:
//   - error: ValidationError describing the first invalid field; nil when valid
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return ValidationError{Field: "concurrency", Message: fmt.Sprintf("must not be negative, got %d", c.Concurrency), Expected: "0 (unbounded) or a positive integer"}
	}

	u, err := url.Parse(c.Registry)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ValidationError{Field: "registry", Message: fmt.Sprintf("invalid URL %q", c.Registry), Expected: "an http(s) URL such as https://registry.npmjs.org"}
	}

	if strings.ContainsAny(c.Manifest, `/\`) {
		return ValidationError{Field: "manifest", Message: fmt.Sprintf("%q is a path", c.Manifest), Expected: "a file name; use --dir to change directory"}
	}

	return nil
}
