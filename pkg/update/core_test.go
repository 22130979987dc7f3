package update

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/ncu/pkg/manifest"
	"github.com/ajxudir/ncu/pkg/outdated"
	"github.com/ajxudir/ncu/pkg/testutil"
)

// TestApply tests rewriting decided dependencies as caret ranges.
//
// It verifies:
//   - Each decision lands in its own section
//   - Untouched entries and unrelated fields survive
//   - Changes report the previous specifier
func TestApply(t *testing.T) {
	m, err := manifest.Parse("package.json", []byte(`{
  "name": "app",
  "dependencies": {"lodash": "^4.17.0", "react": "latest", "left": "1.0.0"},
  "devDependencies": {"jest": "~29.0.0"}
}`))
	require.NoError(t, err)

	result := &outdated.Result{
		Dependencies: []outdated.Decision{
			{Name: "lodash", Group: "dependencies", CurrentVersion: "4.17.0", LatestVersion: "4.17.21"},
			{Name: "react", Group: "dependencies", CurrentVersion: "18.2.0", LatestVersion: "18.2.0"},
		},
		DevDependencies: []outdated.Decision{
			{Name: "jest", Group: "devDependencies", CurrentVersion: "29.0.0", LatestVersion: "29.7.0"},
		},
	}

	changes := Apply(m, result)
	assert.Equal(t, []Change{
		{Name: "lodash", Group: "dependencies", From: "^4.17.0", To: "^4.17.21"},
		{Name: "react", Group: "dependencies", From: "latest", To: "^18.2.0"},
		{Name: "jest", Group: "devDependencies", From: "~29.0.0", To: "^29.7.0"},
	}, changes)

	assert.Equal(t, []manifest.Dependency{
		{Name: "lodash", Specifier: "^4.17.21"},
		{Name: "react", Specifier: "^18.2.0"},
		{Name: "left", Specifier: "1.0.0"},
	}, m.Dependencies())
	assert.Equal(t, []manifest.Dependency{{Name: "jest", Specifier: "^29.7.0"}}, m.DevDependencies())
}

// TestApplyNilResult tests that a nil result changes nothing.
func TestApplyNilResult(t *testing.T) {
	m, err := manifest.Parse("package.json", []byte(`{"dependencies":{"a":"^1.0.0"}}`))
	require.NoError(t, err)

	assert.Nil(t, Apply(m, nil))
	assert.Equal(t, "^1.0.0", m.Dependencies()[0].Specifier)
}

// TestApplyCreatesMissingSection tests that a decision for an absent section creates it.
func TestApplyCreatesMissingSection(t *testing.T) {
	m, err := manifest.Parse("package.json", []byte(`{"name":"app"}`))
	require.NoError(t, err)

	Apply(m, &outdated.Result{DevDependencies: []outdated.Decision{{Name: "jest", LatestVersion: "29.7.0"}}})

	content, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"app\",\n  \"devDependencies\": {\n    \"jest\": \"^29.7.0\"\n  }\n}\n", string(content))
}

// TestUpgrade tests applying and writing a manifest to disk.
func TestUpgrade(t *testing.T) {
	dir := testutil.WriteManifest(t, `{
  "name": "app",
  "version": "1.0.0",
  "dependencies": {
    "lodash": "^4.17.0"
  }
}
`)
	m, err := manifest.Read(filepath.Join(dir, "package.json"))
	require.NoError(t, err)

	changes, err := Upgrade(m, &outdated.Result{Dependencies: []outdated.Decision{
		{Name: "lodash", Group: "dependencies", CurrentVersion: "4.17.0", LatestVersion: "4.17.21"},
	}})
	require.NoError(t, err)
	require.Len(t, changes, 1)

	assert.Equal(t, `{
  "name": "app",
  "version": "1.0.0",
  "dependencies": {
    "lodash": "^4.17.21"
  }
}
`, testutil.ReadManifest(t, dir))
}

// TestUpgradeEmptyResultDoesNotWrite tests that nothing is written without decisions.
func TestUpgradeEmptyResultDoesNotWrite(t *testing.T) {
	original := writeManifestFunc
	defer func() { writeManifestFunc = original }()

	writes := 0
	writeManifestFunc = func(m *manifest.Manifest) error {
		writes++
		return nil
	}

	m, err := manifest.Parse("package.json", []byte(`{"dependencies":{"a":"^1.0.0"}}`))
	require.NoError(t, err)

	changes, err := Upgrade(m, &outdated.Result{})
	require.NoError(t, err)
	assert.Nil(t, changes)

	changes, err = Upgrade(m, nil)
	require.NoError(t, err)
	assert.Nil(t, changes)
	assert.Equal(t, 0, writes)
}

// TestUpgradeWriteError tests that write failures are returned.
func TestUpgradeWriteError(t *testing.T) {
	original := writeManifestFunc
	defer func() { writeManifestFunc = original }()

	writeManifestFunc = func(m *manifest.Manifest) error {
		return fmt.Errorf("permission denied")
	}

	m, err := manifest.Parse("package.json", []byte(`{"dependencies":{"a":"^1.0.0"}}`))
	require.NoError(t, err)

	_, err = Upgrade(m, &outdated.Result{Dependencies: []outdated.Decision{{Name: "a", LatestVersion: "2.0.0"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upgrade dependencies")
	assert.Contains(t, err.Error(), "permission denied")
}

// TestSpecifier tests the caret range format.
func TestSpecifier(t *testing.T) {
	assert.Equal(t, "^4.17.21", Specifier("4.17.21"))
}
