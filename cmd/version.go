package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/ncu/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionOutput(cmd.OutOrStdout())
	},
}

// printVersionOutput prints version, build, and runtime information.
//
// Output includes the platform, Go version, build date and git commit when
// they were set at build time, and the version string.
//
// Parameters:
//   - w: Destination writer
func printVersionOutput(w io.Writer) {
	_, _ = fmt.Fprintf(w, "  Build:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	_, _ = fmt.Fprintf(w, "  Version: %s\n", Version)
}

// GetVersion returns the current version string.
//
// Returns:
//   - string: Version string (e.g., "1.0.0", or "dev" for development builds)
func GetVersion() string {
	return Version
}
