package output

import (
	"fmt"
	"io"
	"strconv"
)

// WriteCheckResult writes a check result in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the result using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Check result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteCheckResult(w io.Writer, format Format, result *CheckResult) error {
	formatter := NewFormatter(format, w)

	if result.Packages == nil {
		result.Packages = []CheckedPackage{}
	}

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeCheckCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeCheckCSV writes one row per reported dependency.
func writeCheckCSV(f *Formatter, result *CheckResult) error {
	headers := []string{"NAME", "GROUP", "CURRENT", "LATEST", "STATUS", "SPECIFIER", "UPGRADED"}
	rows := make([][]string, 0, len(result.Packages))
	for _, pkg := range result.Packages {
		rows = append(rows, []string{
			pkg.Name,
			pkg.Group,
			pkg.Current,
			pkg.Latest,
			pkg.Status,
			pkg.Specifier,
			strconv.FormatBool(result.Summary.Upgraded),
		})
	}
	return f.WriteCSV(headers, rows)
}
