package errors

import (
	"errors"
	"fmt"
)

// ErrConfigConflict is returned when mutually exclusive modes are requested together.
// It is reported before any file or network access happens.
var ErrConfigConflict = errors.New("cannot use both --show-all and --upgrade at the same time")

// ErrManifestNotFound is returned when no manifest exists at the configured path.
// Callers wrap it with the path that was tried.
var ErrManifestNotFound = errors.New("package.json not found")

// ManifestParseError indicates the manifest exists but is not a valid JSON document
// with object-valued dependency sections.
//
// Fields:
//   - Path: The manifest path that was read
//   - Err: The underlying decode error
type ManifestParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
//
// Returns:
//   - string: "failed to parse <path>: <cause>"
func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// IsManifestParseError checks if err is a ManifestParseError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ManifestParseError: The ManifestParseError if err is one, nil otherwise
//   - bool: true if err is a ManifestParseError
func IsManifestParseError(err error) (*ManifestParseError, bool) {
	var pe *ManifestParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// RegistryFetchError indicates the latest version of a package could not be retrieved.
//
// A single RegistryFetchError aborts the whole check; there is no partial result
// and no retry.
//
// Fields:
//   - Package: Name of the package being looked up
//   - StatusCode: HTTP status returned by the registry, 0 if no response was received
//   - Err: The underlying transport, status, or decode error
type RegistryFetchError struct {
	Package    string
	StatusCode int
	Err        error
}

// Error implements the error interface.
//
// Returns:
//   - string: Message naming the package, including the HTTP status when one was received
func (e *RegistryFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch latest version of %s: registry returned %d: %v", e.Package, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch latest version of %s: %v", e.Package, e.Err)
}

// Unwrap returns the underlying error.
func (e *RegistryFetchError) Unwrap() error {
	return e.Err
}

// IsRegistryFetchError checks if err is a RegistryFetchError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *RegistryFetchError: The RegistryFetchError if err is one, nil otherwise
//   - bool: true if err is a RegistryFetchError
func IsRegistryFetchError(err error) (*RegistryFetchError, bool) {
	var fe *RegistryFetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
