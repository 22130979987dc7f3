// Package update rewrites manifest dependency specifiers from check results.
package update

import (
	"fmt"

	"github.com/ajxudir/ncu/pkg/constants"
	"github.com/ajxudir/ncu/pkg/manifest"
	"github.com/ajxudir/ncu/pkg/outdated"
	"github.com/ajxudir/ncu/pkg/verbose"
)

// writeManifestFunc is a variable that holds the manifest.Write function.
// This allows for dependency injection during testing.
var writeManifestFunc = manifest.Write

// Change records one specifier rewritten in the manifest.
//
// Fields:
//   - Name: The package name
//   - Group: The manifest section the entry lives in
//   - From: The specifier before the rewrite
//   - To: The specifier written, always a caret range
type Change struct {
	Name  string
	Group string
	From  string
	To    string
}

// Specifier returns the caret range written for a latest version.
//
// Parameters:
//   - latest: The version published as latest
//
// Returns:
//   - string: "^" followed by latest
func Specifier(latest string) string {
	return constants.CaretConstraint + latest
}

// Apply sets every decided dependency to a caret range of its latest version.
//
// Decisions are applied to the section they came from; other entries and
// unrelated manifest fields are left as they are. Nothing is written to disk.
//
// Parameters:
//   - m: The manifest to modify in place
//   - result: The check result holding the decisions
//
// Returns:
//   - []Change: The applied changes, dependencies first, in declaration order
func Apply(m *manifest.Manifest, result *outdated.Result) []Change {
	if result == nil {
		return nil
	}

	var changes []Change
	for _, field := range manifest.Groups {
		declared := make(map[string]string)
		for _, dep := range m.Group(field) {
			declared[dep.Name] = dep.Specifier
		}

		for _, d := range result.Group(field) {
			to := Specifier(d.LatestVersion)
			m.SetSpecifier(field, d.Name, to)
			changes = append(changes, Change{Name: d.Name, Group: field, From: declared[d.Name], To: to})
			verbose.Printf("Upgrade %s (%s): %q -> %q", d.Name, field, declared[d.Name], to)
		}
	}
	return changes
}

// Upgrade applies the decisions of a check and writes the manifest back.
//
// It performs the following operations:
//   - Step 1: Return without touching the file when the result is empty
//   - Step 2: Rewrite decided specifiers as caret ranges
//   - Step 3: Overwrite the manifest at its original path
//
// Parameters:
//   - m: The manifest to update
//   - result: The check result holding the decisions
//
// Returns:
//   - []Change: The applied changes; nil when nothing was decided
//   - error: Returns error if writing fails; returns nil on success
func Upgrade(m *manifest.Manifest, result *outdated.Result) ([]Change, error) {
	if result == nil || result.Empty() {
		verbose.Info("Nothing to upgrade; manifest left untouched")
		return nil, nil
	}

	changes := Apply(m, result)
	if err := writeManifestFunc(m); err != nil {
		return nil, fmt.Errorf("failed to upgrade dependencies: %w", err)
	}
	return changes, nil
}
