package output

import "encoding/xml"

// Package statuses used in structured output.
const (
	StatusOutdated = "outdated"
	StatusUpToDate = "up-to-date"
	StatusUpgraded = "upgraded"
)

// CheckResult represents the structured output of one run.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the run
//   - Packages: One entry per reported dependency, dependencies first
//   - Warnings: Warning messages generated during the check (omitted if empty)
type CheckResult struct {
	XMLName  xml.Name         `json:"-" xml:"checkResult"`
	Summary  CheckSummary     `json:"summary" xml:"summary"`
	Packages []CheckedPackage `json:"packages" xml:"packages>package"`
	Warnings []string         `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// CheckSummary holds summary statistics for a run.
//
// Fields:
//   - Manifest: Path of the manifest that was checked
//   - Mode: "check", "upgrade", or "show-all"
//   - TotalPackages: Number of reported dependencies
//   - OutdatedPackages: Number of reported dependencies with a newer version
//   - Upgraded: Whether the manifest was rewritten
type CheckSummary struct {
	Manifest         string `json:"manifest" xml:"manifest"`
	Mode             string `json:"mode" xml:"mode"`
	TotalPackages    int    `json:"total_packages" xml:"totalPackages"`
	OutdatedPackages int    `json:"outdated_packages" xml:"outdatedPackages"`
	Upgraded         bool   `json:"upgraded" xml:"upgraded"`
}

// CheckedPackage represents one reported dependency.
//
// Fields:
//   - Name: Package name
//   - Group: Manifest section (dependencies or devDependencies)
//   - Current: Normalized declared version
//   - Latest: Version published as latest
//   - Status: One of StatusOutdated, StatusUpToDate, StatusUpgraded
//   - Specifier: Specifier written to the manifest (omitted unless upgraded)
type CheckedPackage struct {
	Name      string `json:"name" xml:"name"`
	Group     string `json:"group" xml:"group"`
	Current   string `json:"current" xml:"current"`
	Latest    string `json:"latest" xml:"latest"`
	Status    string `json:"status" xml:"status"`
	Specifier string `json:"specifier,omitempty" xml:"specifier,omitempty"`
}
