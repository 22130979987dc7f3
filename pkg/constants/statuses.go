// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for manifest
// fields, registry defaults, and user-facing messages.
package constants

// Manifest field names recognized in package.json.
const (
	// FieldDependencies is the runtime dependency section.
	FieldDependencies = "dependencies"

	// FieldDevDependencies is the development dependency section.
	FieldDevDependencies = "devDependencies"
)

// Defaults for locating the manifest and the registry.
const (
	// DefaultManifestName is the manifest file looked up in the working directory.
	DefaultManifestName = "package.json"

	// DefaultConfigName is the optional config file looked up in the working directory.
	DefaultConfigName = ".ncu.yml"

	// DefaultRegistryURL is the public npm registry.
	DefaultRegistryURL = "https://registry.npmjs.org"
)

// Version specifier tokens.
const (
	// LatestSpecifier is the literal specifier for an intentionally unpinned dependency.
	LatestSpecifier = "latest"

	// CaretConstraint prefixes every specifier written in upgrade mode.
	CaretConstraint = "^"
)

// User-facing messages.
const (
	MsgUpToDate       = "All dependencies are up to date!"
	MsgFetchedAll     = "Fetched all the dependencies for the project"
	MsgCanBeUpdated   = "The following dependencies can be updated:"
	MsgAreUpdated     = "The following dependencies are updated:"
	MsgUpgradeSuccess = "Dependencies upgraded successfully!"
)

// Icon constants used as message prefixes.
const (
	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
