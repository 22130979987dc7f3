package outdated

import (
	"strings"

	"golang.org/x/mod/semver"
)

// canonicalSemver converts an npm version string to the canonical "vMAJOR.MINOR.PATCH"
// form understood by golang.org/x/mod/semver.
//
// It performs the following operations:
//   - Adds the "v" prefix when missing
//   - Pads partial versions ("4", "4.17") with zero components
//   - Keeps pre-release identifiers; build metadata is dropped by semver.Canonical
//
// Parameters:
//   - version: The version string, e.g. "4.17.21" or "1.0.0-rc.1"
//
// Returns:
//   - string: The canonical form, or "" when the version is not valid semver
func canonicalSemver(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	if semver.IsValid(cleaned) {
		return semver.Canonical(cleaned)
	}

	return ""
}

// IsNewer reports whether latest has higher semver precedence than current.
//
// Parameters:
//   - latest: The version published by the registry
//   - current: The normalized declared version
//
// Returns:
//   - bool: true if latest > current
//   - bool: false when either version is not valid semver, in which case the first result is false
func IsNewer(latest, current string) (bool, bool) {
	l := canonicalSemver(latest)
	c := canonicalSemver(current)
	if l == "" || c == "" {
		return false, false
	}
	return semver.Compare(l, c) > 0, true
}

// IsValidVersion reports whether a version can take part in a comparison.
func IsValidVersion(version string) bool {
	return canonicalSemver(version) != ""
}
