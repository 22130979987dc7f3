package outdated

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/ncu/pkg/config"
	"github.com/ajxudir/ncu/pkg/manifest"
	"github.com/ajxudir/ncu/pkg/warnings"
)

// TestNormalizeVersion tests normalization of declared specifiers.
//
// It verifies:
//   - Digit-first specifiers are returned unchanged
//   - "latest" becomes the fetched version
//   - Any other specifier loses exactly one leading character
func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		specifier string
		latest    string
		want      string
	}{
		{"4.17.0", "4.17.21", "4.17.0"},
		{"0.0.1", "1.0.0", "0.0.1"},
		{"1", "2.0.0", "1"},
		{"1.x", "2.0.0", "1.x"},
		{"^4.17.0", "4.17.21", "4.17.0"},
		{"~1.6.0", "1.7.0", "1.6.0"},
		{"v2.0.0", "2.1.0", "2.0.0"},
		{"=3.0.0", "3.0.0", "3.0.0"},
		{">=1.2.0", "1.3.0", "=1.2.0"},
		{"~>1.0", "1.1.0", ">1.0"},
		{"latest", "18.2.0", "18.2.0"},
		{"*", "1.0.0", ""},
		{"", "1.0.0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVersion(tt.specifier, tt.latest))
		})
	}
}

// TestSelected tests the selection filter for each mode.
func TestSelected(t *testing.T) {
	assert.True(t, Selected("^1.0.0", config.Options{}))
	assert.False(t, Selected("latest", config.Options{}))
	assert.False(t, Selected("latest", config.Options{Upgrade: true}))
	assert.True(t, Selected("latest", config.Options{Latest: true}))
	assert.True(t, Selected("latest", config.Options{ShowAll: true}))
	assert.True(t, Selected("Latest", config.Options{}))
}

// TestEligible tests the three eligibility rules.
func TestEligible(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		opts    config.Options
		want    bool
	}{
		{name: "newer patch", current: "4.17.0", latest: "4.17.21", want: true},
		{name: "newer major", current: "1.9.9", latest: "2.0.0", want: true},
		{name: "numeric not lexical", current: "1.9.0", latest: "1.10.0", want: true},
		{name: "equal", current: "18.2.0", latest: "18.2.0", want: false},
		{name: "older on registry", current: "2.0.0", latest: "1.0.0", want: false},
		{name: "prerelease below release", current: "2.0.0-rc.1", latest: "2.0.0", want: true},
		{name: "release above prerelease latest", current: "2.0.0", latest: "2.0.0-rc.1", want: false},
		{name: "partial current", current: "4.17", latest: "4.17.1", want: true},
		{name: "show all equal", current: "1.0.0", latest: "1.0.0", opts: config.Options{ShowAll: true}, want: true},
		{name: "show all older", current: "2.0.0", latest: "1.0.0", opts: config.Options{ShowAll: true}, want: true},
		{name: "latest mode equal", current: "18.2.0", latest: "18.2.0", opts: config.Options{Latest: true}, want: true},
		{name: "latest mode older registry", current: "2.0.0", latest: "1.0.0", opts: config.Options{Latest: true}, want: false},
		{name: "uncomparable", current: "ithub:user/repo", latest: "1.0.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.current, tt.latest, tt.opts))
		})
	}
}

// TestDecide tests the scenarios of a single dependency decision.
func TestDecide(t *testing.T) {
	t.Run("caret range behind latest", func(t *testing.T) {
		d, ok := Decide("dependencies", manifest.Dependency{Name: "lodash", Specifier: "^4.17.0"}, "4.17.21", config.Options{})
		assert.True(t, ok)
		assert.Equal(t, Decision{Name: "lodash", Group: "dependencies", CurrentVersion: "4.17.0", LatestVersion: "4.17.21"}, d)
		assert.False(t, d.IsUpToDate())
	})

	t.Run("latest pin default mode", func(t *testing.T) {
		_, ok := Decide("dependencies", manifest.Dependency{Name: "react", Specifier: "latest"}, "18.2.0", config.Options{})
		assert.False(t, ok)
	})

	t.Run("latest pin latest mode", func(t *testing.T) {
		d, ok := Decide("dependencies", manifest.Dependency{Name: "react", Specifier: "latest"}, "18.2.0", config.Options{Latest: true})
		assert.True(t, ok)
		assert.Equal(t, Decision{Name: "react", Group: "dependencies", CurrentVersion: "18.2.0", LatestVersion: "18.2.0"}, d)
		assert.True(t, d.IsUpToDate())
	})

	t.Run("uncomparable warns", func(t *testing.T) {
		var buf bytes.Buffer
		restore := warnings.SetWarningWriter(&buf)
		defer restore()

		_, ok := Decide("devDependencies", manifest.Dependency{Name: "mylib", Specifier: "github:user/repo"}, "1.0.0", config.Options{})
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "Skipping mylib")
	})

	t.Run("uncomparable shown with show-all", func(t *testing.T) {
		var buf bytes.Buffer
		restore := warnings.SetWarningWriter(&buf)
		defer restore()

		d, ok := Decide("dependencies", manifest.Dependency{Name: "local", Specifier: "file:../local"}, "1.0.0", config.Options{ShowAll: true})
		assert.True(t, ok)
		assert.Equal(t, "ile:../local", d.CurrentVersion)
		assert.Empty(t, buf.String())
	})
}

// TestCanonicalSemver tests conversion to the canonical semver form.
func TestCanonicalSemver(t *testing.T) {
	assert.Equal(t, "v4.17.21", canonicalSemver("4.17.21"))
	assert.Equal(t, "v4.17.21", canonicalSemver("v4.17.21"))
	assert.Equal(t, "v4.0.0", canonicalSemver("4"))
	assert.Equal(t, "v4.17.0", canonicalSemver("4.17"))
	assert.Equal(t, "v1.0.0-rc.1", canonicalSemver("1.0.0-rc.1"))
	assert.Equal(t, "v1.0.0", canonicalSemver("1.0.0+build.5"))
	assert.Equal(t, "", canonicalSemver(""))
	assert.Equal(t, "", canonicalSemver("=1.2.0"))
	assert.Equal(t, "", canonicalSemver("1.x"))
}

// TestIsNewer tests comparability reporting.
func TestIsNewer(t *testing.T) {
	newer, ok := IsNewer("1.10.0", "1.9.0")
	assert.True(t, ok)
	assert.True(t, newer)

	newer, ok = IsNewer("1.0.0", "not-a-version")
	assert.False(t, ok)
	assert.False(t, newer)
}
