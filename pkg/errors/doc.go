// Package errors provides unified error types and exit codes for ncu.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - ErrConfigConflict: Incompatible mode flags (--show-all with --upgrade)
//   - ErrManifestNotFound / ManifestParseError: package.json could not be loaded
//   - RegistryFetchError: A registry lookup failed and aborted the run
//
// Error Display:
//
// Errors are printed once by the command layer with an actionable hint:
//
//	fmt.Fprintf(os.Stderr, "Error: %s\n", errors.EnhanceErrorWithHint(err))
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): The check completed
//   - ExitFailure (2): The manifest or registry could not be read
//   - ExitConfigError (3): Configuration or flag error
package errors
