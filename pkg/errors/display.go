package errors

import (
	"fmt"
	"io"
)

// PrintError prints an error with its actionable hint to the writer.
//
// This is the single implementation for error display across the command.
// Nil errors produce no output.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - err: The error to display
//
// Output format:
//
//	Error: <error message>
//	  💡 <hint>: <resolution>
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}
