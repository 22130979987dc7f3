package config

import (
	"fmt"

	"github.com/ajxudir/ncu/pkg/errors"
	"github.com/ajxudir/ncu/pkg/output"
)

// Options holds the mode flags of a single run.
//
// Fields:
//   - Upgrade: Rewrite the manifest with resolved updates
//   - Latest: Also consider dependencies pinned to "latest" and resolve them
//   - ShowAll: Report every dependency regardless of update availability
//   - Format: Output format for the report
type Options struct {
	Upgrade bool
	Latest  bool
	ShowAll bool
	Format  output.Format
}

// Validate checks that the requested modes can be combined.
//
// ShowAll together with Upgrade is rejected so that nothing is fetched or
// written when the user asks for both.
//
// Returns:
//   - error: errors.ErrConfigConflict for show-all with upgrade; nil otherwise
func (o Options) Validate() error {
	if o.ShowAll && o.Upgrade {
		return errors.ErrConfigConflict
	}
	if o.Format != "" && !output.IsKnownFormat(o.Format) {
		return fmt.Errorf("unsupported output format: %s", o.Format)
	}
	return nil
}
