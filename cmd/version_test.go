package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersionOutput tests both the version flag and the version subcommand.
func TestVersionOutput(t *testing.T) {
	oldVersion := Version
	oldCommit := GitCommit
	defer func() {
		Version = oldVersion
		GitCommit = oldCommit
	}()
	Version = "1.2.3"
	GitCommit = "abc123"

	for _, args := range [][]string{{"--version"}, {"-v"}, {"version"}} {
		stdout, _, err := runNcu(t, args...)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Version: 1.2.3")
		assert.Contains(t, stdout, "Git:     abc123")
		assert.Contains(t, stdout, "Go:")
	}
	assert.Equal(t, "1.2.3", GetVersion())
}
