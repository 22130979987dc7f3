package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "package.json not found",
		Hint:       "No manifest in the working directory",
		Resolution: "Run ncu in the directory containing package.json, or pass --dir",
	},
	{
		Pattern:    "failed to parse",
		Hint:       "Check file syntax",
		Resolution: "Validate JSON/YAML syntax using a linter or online validator",
	},
	{
		Pattern:    "--show-all and --upgrade",
		Hint:       "Incompatible flags",
		Resolution: "Run 'ncu --show-all' to inspect, then 'ncu --upgrade' to write",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Check .ncu.yml keys: registry, manifest, concurrency",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
	{
		Pattern:    "no such host",
		Hint:       "DNS resolution failed",
		Resolution: "Check network connectivity and DNS configuration",
	},
	{
		Pattern:    "connection refused",
		Hint:       "Connection refused by server",
		Resolution: "Check if the registry is accessible and not blocked",
	},
	{
		Pattern:    "registry returned 401",
		Hint:       "Authentication required",
		Resolution: "Configure authentication for the package registry",
	},
	{
		Pattern:    "registry returned 403",
		Hint:       "Access forbidden",
		Resolution: "Check permissions and authentication credentials for the registry",
	},
	{
		Pattern:    "registry returned 404",
		Hint:       "Package not found",
		Resolution: "Verify the package name is published to the configured registry",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
//
// Example:
//
//	hint := errors.GetHint(err)
//	if hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	if hint := GetHint(err); hint != "" {
		return err.Error() + "\n  \U0001F4A1 " + hint
	}
	return err.Error()
}
