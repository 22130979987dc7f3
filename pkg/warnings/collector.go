package warnings

import (
	"strings"

	"github.com/ajxudir/ncu/pkg/constants"
)

// Collector captures warnings for structured output.
//
// Implements io.Writer so it can be installed with SetWarningWriter. Warnf
// serializes writes, so no extra locking is needed here.
//
// Example:
//
//	collector := &warnings.Collector{}
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
type Collector struct {
	messages []string
}

// Write implements io.Writer for capturing warning messages.
//
// Splits input on newlines and stores non-empty lines without the warning icon.
//
// Parameters:
//   - p: Byte slice containing warning message data
//
// Returns:
//   - int: Number of bytes written (always len(p))
//   - error: Always nil
func (c *Collector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), constants.IconWarn))
		if trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of all collected warning messages.
func (c *Collector) Messages() []string {
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}
