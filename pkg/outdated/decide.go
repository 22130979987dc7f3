// Package outdated decides which declared dependencies have an eligible update.
//
// The decision for a single dependency is:
//   - Selection: a "latest" specifier is skipped unless --latest or --show-all is set
//   - Normalization: the declared specifier is turned into a bare version
//   - Eligibility: newer on the registry, or forced by --show-all, or a resolved
//     "latest" pin under --latest
//
// Check runs the registry lookups for every selected dependency concurrently
// and fails as a whole on the first lookup error.
package outdated

import (
	"github.com/ajxudir/ncu/pkg/config"
	"github.com/ajxudir/ncu/pkg/constants"
	"github.com/ajxudir/ncu/pkg/manifest"
	"github.com/ajxudir/ncu/pkg/verbose"
	"github.com/ajxudir/ncu/pkg/warnings"
)

// Decision records an eligible update for one dependency.
//
// Fields:
//   - Name: The package name
//   - Group: The manifest section it was declared in (dependencies or devDependencies)
//   - CurrentVersion: The normalized declared version
//   - LatestVersion: The version published as latest
type Decision struct {
	Name           string
	Group          string
	CurrentVersion string
	LatestVersion  string
}

// IsUpToDate reports whether the decision carries no version change.
// This happens under --show-all and for resolved "latest" pins.
func (d Decision) IsUpToDate() bool {
	return d.CurrentVersion == d.LatestVersion
}

// Selected reports whether a dependency is considered at all.
//
// Parameters:
//   - specifier: The declared specifier
//   - opts: Mode flags of the run
//
// Returns:
//   - bool: true when --latest or --show-all is set, otherwise true unless the
//     specifier is exactly "latest"
func Selected(specifier string, opts config.Options) bool {
	if opts.Latest || opts.ShowAll {
		return true
	}
	return specifier != constants.LatestSpecifier
}

// NormalizeVersion turns a declared specifier into a version to compare.
//
// A specifier starting with a digit is returned unchanged. "latest" becomes the
// fetched latest version. Any other specifier loses exactly one leading
// character, so "^4.17.0" becomes "4.17.0" and ">=1.2.0" becomes "=1.2.0".
//
// Parameters:
//   - specifier: The declared specifier
//   - latest: The version fetched from the registry
//
// Returns:
//   - string: The normalized current version
func NormalizeVersion(specifier, latest string) string {
	if specifier == "" || isDigit(specifier[0]) {
		return specifier
	}
	if specifier == constants.LatestSpecifier {
		return latest
	}
	return specifier[1:]
}

// Eligible reports whether a decision is emitted for a dependency.
//
// Parameters:
//   - current: The normalized current version
//   - latest: The version fetched from the registry
//   - opts: Mode flags of the run
//
// Returns:
//   - bool: true when latest is newer than current, when --show-all is set, or
//     when --latest is set and both versions are equal
func Eligible(current, latest string, opts config.Options) bool {
	newer, _ := IsNewer(latest, current)
	return newer || opts.ShowAll || (opts.Latest && current == latest)
}

// Decide applies normalization and eligibility to one fetched dependency.
//
// A current version that is not valid semver cannot be compared; it is
// reported as a warning and dropped unless another rule makes it eligible.
//
// Parameters:
//   - group: The manifest section of the dependency
//   - dep: The declared dependency
//   - latest: The version fetched from the registry
//   - opts: Mode flags of the run
//
// Returns:
//   - Decision: The decision, valid only when the second result is true
//   - bool: true when the dependency is eligible
func Decide(group string, dep manifest.Dependency, latest string, opts config.Options) (Decision, bool) {
	current := NormalizeVersion(dep.Specifier, latest)

	if !Eligible(current, latest, opts) {
		if !IsValidVersion(current) {
			warnings.Warnf("Skipping %s: cannot compare specifier %q with latest version %s", dep.Name, dep.Specifier, latest)
			return Decision{}, false
		}
		verbose.PackageFiltered(dep.Name, "up to date")
		return Decision{}, false
	}

	verbose.VersionSelected(dep.Name, current, latest, reason(current, latest, opts))
	return Decision{Name: dep.Name, Group: group, CurrentVersion: current, LatestVersion: latest}, true
}

// reason describes which eligibility rule matched, for debug output.
func reason(current, latest string, opts config.Options) string {
	if newer, _ := IsNewer(latest, current); newer {
		return "newer version available"
	}
	if opts.ShowAll {
		return "show-all"
	}
	return "resolved latest"
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
