// Package cmd implements the ncu command-line interface.
// It checks the dependencies declared in package.json against the npm
// registry and optionally rewrites them to the latest published versions.
package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/ncu/pkg/config"
	"github.com/ajxudir/ncu/pkg/errors"
	"github.com/ajxudir/ncu/pkg/manifest"
	"github.com/ajxudir/ncu/pkg/outdated"
	"github.com/ajxudir/ncu/pkg/output"
	"github.com/ajxudir/ncu/pkg/registry"
	"github.com/ajxudir/ncu/pkg/update"
	"github.com/ajxudir/ncu/pkg/verbose"
	"github.com/ajxudir/ncu/pkg/warnings"
)

var exitFunc = os.Exit

var (
	upgradeFlag  bool
	latestFlag   bool
	showAllFlag  bool
	formatFlag   string
	dirFlag      string
	configFlag   string
	registryFlag string
	verboseFlag  bool
	versionFlag  bool
)

// Seams for tests.
var (
	loadConfigFunc   = config.LoadConfig
	readManifestFunc = manifest.Read
	upgradeFunc      = update.Upgrade
	newFetcherFunc   = func(cfg *config.Config) registry.Fetcher {
		return registry.NewClient(cfg.Registry, GetVersion())
	}
)

var rootCmd = &cobra.Command{
	Use:   "ncu",
	Short: "Check package.json dependencies for newer versions",
	Long: `Check the dependencies and devDependencies of package.json against the
latest versions published on the npm registry, and optionally upgrade them.`,
	Example: `  $ ncu -u
  $ ncu --upgrade`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: runCheck,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 2: Manifest, registry, or write failure
//   - 3: Configuration or flag error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		logFailure(err)
		exitFunc(errors.GetExitCode(err))
	}
}

// logFailure writes the failing package or manifest and the exit code as debug lines.
func logFailure(err error) {
	if !verbose.IsEnabled() {
		return
	}
	if fe, ok := errors.IsRegistryFetchError(err); ok {
		verbose.Infof("Registry lookup failed for %s (HTTP status %d)", fe.Package, fe.StatusCode)
	}
	if pe, ok := errors.IsManifestParseError(err); ok {
		verbose.Infof("Manifest %s could not be parsed", pe.Path)
	}
	verbose.Infof("Exit code %d: %v", errors.GetExitCode(err), err)
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	// -v/--version is local so it only applies to the root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVarP(&upgradeFlag, "upgrade", "u", false, "Upgrade outdated dependencies")
	rootCmd.Flags().BoolVarP(&latestFlag, "latest", "l", false, `Upgrade dependencies marked "latest" to version number`)
	rootCmd.Flags().BoolVar(&showAllFlag, "show-all", false, "Show all dependencies")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format: table, json, csv, xml")
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", ".", "Directory containing package.json")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Config file path (default: <dir>/.ncu.yml if present)")
	rootCmd.Flags().StringVar(&registryFlag, "registry", "", "Registry base URL (default: https://registry.npmjs.org)")

	rootCmd.AddCommand(versionCmd)
}

// runCheck executes the dependency check and, with --upgrade, the manifest rewrite.
//
// It performs the following operations:
//   - Step 1: Reject incompatible flags before touching the file system or network
//   - Step 2: Load configuration and read the manifest
//   - Step 3: Look up latest versions and decide eligible updates
//   - Step 4: Report, then rewrite the manifest when upgrading
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: ExitError with ExitConfigError for flag and config problems;
//     manifest, registry, and write errors otherwise
func runCheck(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersionOutput(cmd.OutOrStdout())
		return nil
	}

	opts := config.Options{
		Upgrade: upgradeFlag,
		Latest:  latestFlag,
		ShowAll: showAllFlag,
		Format:  output.ParseFormat(formatFlag),
	}
	if err := opts.Validate(); err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	cfg, err := loadConfigFunc(configFlag, dirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}
	if registryFlag != "" {
		cfg.Registry = strings.TrimRight(registryFlag, "/")
		if err := cfg.Validate(); err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}
	}

	m, err := readManifestFunc(cfg.ManifestPath())
	if err != nil {
		return err
	}

	var collector *warnings.Collector
	if output.IsStructuredFormat(opts.Format) {
		collector = &warnings.Collector{}
		restore := warnings.SetWarningWriter(collector)
		defer restore()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := outdated.NewChecker(newFetcherFunc(cfg), cfg).Check(ctx, m, opts)
	if err != nil {
		return err
	}

	upgrade := opts.Upgrade && !result.Empty()

	w := cmd.OutOrStdout()
	if output.IsStructuredFormat(opts.Format) {
		var changes []update.Change
		if upgrade {
			if changes, err = upgradeFunc(m, result); err != nil {
				return err
			}
		}
		return output.WriteCheckResult(w, opts.Format, buildCheckResult(m.Path(), opts, result, changes, collector))
	}

	printer := output.NewPrinter(w)
	if result.Empty() {
		printer.PrintUpToDate()
		return nil
	}

	// The report goes out before the manifest is touched.
	printer.PrintReport(output.Heading(opts.ShowAll, opts.Upgrade), reportLines(result))
	if !upgrade {
		return nil
	}
	if _, err := upgradeFunc(m, result); err != nil {
		return err
	}
	printer.PrintUpgraded()
	return nil
}

// reportLines converts decisions to report lines in output order.
func reportLines(result *outdated.Result) []output.ReportLine {
	decisions := result.All()
	lines := make([]output.ReportLine, 0, len(decisions))
	for _, d := range decisions {
		lines = append(lines, output.ReportLine{Name: d.Name, Current: d.CurrentVersion, Latest: d.LatestVersion})
	}
	return lines
}

// buildCheckResult assembles the structured output of a run.
//
// Parameters:
//   - manifestPath: Path of the checked manifest
//   - opts: Mode flags of the run
//   - result: Decisions of the check
//   - changes: Specifiers written in upgrade mode, nil otherwise
//   - collector: Warnings captured during the check, may be nil
//
// Returns:
//   - *output.CheckResult: The result ready to be written
func buildCheckResult(manifestPath string, opts config.Options, result *outdated.Result, changes []update.Change, collector *warnings.Collector) *output.CheckResult {
	written := make(map[string]string, len(changes))
	for _, c := range changes {
		written[c.Group+"/"+c.Name] = c.To
	}

	res := &output.CheckResult{
		Summary: output.CheckSummary{
			Manifest: manifestPath,
			Mode:     runMode(opts),
			Upgraded: len(changes) > 0,
		},
		Packages: []output.CheckedPackage{},
	}

	for _, d := range result.All() {
		pkg := output.CheckedPackage{
			Name:    d.Name,
			Group:   d.Group,
			Current: d.CurrentVersion,
			Latest:  d.LatestVersion,
			Status:  output.StatusOutdated,
		}
		if d.IsUpToDate() {
			pkg.Status = output.StatusUpToDate
		} else {
			res.Summary.OutdatedPackages++
		}
		if spec, ok := written[d.Group+"/"+d.Name]; ok {
			pkg.Status = output.StatusUpgraded
			pkg.Specifier = spec
		}
		res.Packages = append(res.Packages, pkg)
	}
	res.Summary.TotalPackages = len(res.Packages)

	if collector != nil {
		res.Warnings = collector.Messages()
	}
	return res
}

func runMode(opts config.Options) string {
	switch {
	case opts.ShowAll:
		return "show-all"
	case opts.Upgrade:
		return "upgrade"
	default:
		return "check"
	}
}

// printError writes err with its hint in red.
func printError(w io.Writer, err error) {
	var buf bytes.Buffer
	errors.PrintError(&buf, err)
	output.NewPrinter(w).PrintError(strings.TrimSuffix(buf.String(), "\n"))
}
