package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ajxudir/ncu/pkg/constants"
)

// ReportLine is one dependency line of the human report.
//
// Fields:
//   - Name: Package name
//   - Current: Normalized declared version
//   - Latest: Version published as latest
type ReportLine struct {
	Name    string
	Current string
	Latest  string
}

// Printer writes the human report with terminal styling.
//
// Styling is resolved against the destination writer, so output piped to a
// file or captured in a buffer is plain text.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
	name    lipgloss.Style
	version lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a Printer for w.
//
// Parameters:
//   - w: Destination writer, usually the command's stdout
//
// Returns:
//   - *Printer: A printer whose colors match the capabilities of w
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Foreground(lipgloss.Color("3")),
		name:    r.NewStyle().Bold(true),
		version: r.NewStyle().Foreground(lipgloss.Color("2")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Heading returns the report heading for the run mode.
//
// Parameters:
//   - showAll: Whether every dependency is listed
//   - upgrade: Whether the manifest is being rewritten
//
// Returns:
//   - string: The heading line without styling
func Heading(showAll, upgrade bool) string {
	switch {
	case showAll:
		return constants.MsgFetchedAll
	case upgrade:
		return constants.MsgAreUpdated
	default:
		return constants.MsgCanBeUpdated
	}
}

// DisplayLatest returns the text shown for the latest version of a line.
// Equal versions are shown as the word "latest".
func DisplayLatest(line ReportLine) string {
	if line.Latest == line.Current {
		return constants.LatestSpecifier
	}
	return line.Latest
}

// PrintReport writes the heading followed by one "name: current -> latest" line per entry.
//
// It performs the following operations:
//   - Step 1: Print the heading in yellow
//   - Step 2: Pad every "name:" to the widest name so versions line up
//   - Step 3: Print each line with a bold name and a green latest version
//
// Parameters:
//   - heading: The heading line, see Heading
//   - lines: Report lines in output order
func (p *Printer) PrintReport(heading string, lines []ReportLine) {
	_, _ = fmt.Fprintln(p.w, p.heading.Render(heading))

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line.Name); w > width {
			width = w
		}
	}

	for _, line := range lines {
		label := runewidth.FillRight(line.Name, width)
		padding := label[len(line.Name):]
		_, _ = fmt.Fprintf(p.w, "%s:%s %s -> %s\n",
			p.name.Render(line.Name), padding, line.Current, p.version.Render(DisplayLatest(line)))
	}
}

// PrintUpToDate writes the message shown when nothing is eligible.
func (p *Printer) PrintUpToDate() {
	_, _ = fmt.Fprintln(p.w, p.success.Render(constants.MsgUpToDate))
}

// PrintUpgraded writes the message shown after the manifest was rewritten.
func (p *Printer) PrintUpgraded() {
	_, _ = fmt.Fprintln(p.w, p.success.Render(constants.MsgUpgradeSuccess))
}

// PrintError writes a message in red.
func (p *Printer) PrintError(msg string) {
	_, _ = fmt.Fprintln(p.w, p.failure.Render(msg))
}
