// Package warnings reports non-fatal notices, such as dependencies whose
// specifier cannot be compared, without interrupting the check.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ajxudir/ncu/pkg/constants"
)

var (
	mu sync.Mutex
	// warnWriter is nil until replaced; nil resolves to the current os.Stderr.
	warnWriter io.Writer
)

func writerLocked() io.Writer {
	if warnWriter == nil {
		return os.Stderr
	}
	return warnWriter
}

// Warnf writes a formatted warning line to the configured warning writer.
//
// It performs the following operations:
//   - Formats the message using the provided format string and arguments
//   - Appends a newline unless the message already ends with one
//   - Writes it with the warning icon prefix
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	// Held for the write so concurrent lookups do not interleave lines.
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(writerLocked(), "%s %s", constants.IconWarn, msg)
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// It performs the following operations:
//   - Saves the previous warning writer for restoration
//   - Sets the new warning writer (defaults to os.Stderr if nil)
//   - Returns a function that restores the previous writer when called
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	warnWriter = w

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
