// Package verbose provides opt-in debug logging to stderr.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
//
// Returns:
//   - None
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to false
//   - Releases the write lock
//
// Returns:
//   - None
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag value
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Updates the writer if the provided writer is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - None
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// write formats one [DEBUG] line and writes it if verbose logging is enabled.
//
// The lock is held across the write, so lines from concurrent registry
// lookups never interleave and the writer needs no locking of its own.
//
// Parameters:
//   - format: Printf-style format string without prefix or trailing newline
//   - args: Variadic arguments to format into the string
func write(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(writer, "[DEBUG] "+format+"\n", args...)
}

// Printf prints a formatted verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Printf(format string, args ...any) {
	write(format, args...)
}

// Info prints an informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - msg: The message string to print
//
// Returns:
//   - None
func Info(msg string) {
	write("%s", msg)
}

// Infof prints a formatted informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Infof(format string, args ...any) {
	write(format, args...)
}

// RegistryRequest logs an outgoing registry lookup if enabled.
//
// Parameters:
//   - name: The package being looked up
//   - url: The request URL
func RegistryRequest(name, url string) {
	write("Fetching latest version of '%s': GET %s", name, url)
}

// RegistryResponse logs the outcome of a registry lookup if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the HTTP status and, on success, the resolved version
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - name: The package that was looked up
//   - status: The HTTP status code returned by the registry
//   - version: The resolved version, empty when the lookup failed
func RegistryResponse(name string, status int, version string) {
	if version == "" {
		write("Registry lookup for '%s' failed (status %d)", name, status)
		return
	}
	write("Registry lookup for '%s' returned %s (status %d)", name, version, status)
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: The file path to the configuration file that was loaded
func ConfigLoaded(path string) {
	write("Config loaded: %s", path)
}

// PackageFiltered logs when a package is filtered out if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the package name and the reason it was filtered
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - name: The name of the package that was filtered
//   - reason: The reason why the package was filtered out
//
// Returns:
//   - None
func PackageFiltered(name, reason string) {
	write("Package '%s' filtered: %s", name, reason)
}

// VersionSelected logs version selection details if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the package name, current version, target version, and selection reason
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - pkg: The name of the package
//   - current: The current version of the package
//   - target: The target version selected for the package
//   - reason: The reason why this version was selected
//
// Returns:
//   - None
func VersionSelected(pkg, current, target, reason string) {
	write("Version selected for '%s': %s -> %s (%s)", pkg, current, target, reason)
}
