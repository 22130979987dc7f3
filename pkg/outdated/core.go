package outdated

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ajxudir/ncu/pkg/config"
	"github.com/ajxudir/ncu/pkg/constants"
	"github.com/ajxudir/ncu/pkg/errors"
	"github.com/ajxudir/ncu/pkg/manifest"
	"github.com/ajxudir/ncu/pkg/registry"
	"github.com/ajxudir/ncu/pkg/verbose"
)

// Result holds the eligible updates of one check, per manifest section.
//
// Fields:
//   - Dependencies: Decisions for the dependencies section, in declaration order
//   - DevDependencies: Decisions for the devDependencies section, in declaration order
type Result struct {
	Dependencies    []Decision
	DevDependencies []Decision
}

// All returns dependencies decisions followed by devDependencies decisions.
func (r *Result) All() []Decision {
	all := make([]Decision, 0, len(r.Dependencies)+len(r.DevDependencies))
	all = append(all, r.Dependencies...)
	return append(all, r.DevDependencies...)
}

// Empty reports whether no dependency is eligible.
func (r *Result) Empty() bool {
	return len(r.Dependencies) == 0 && len(r.DevDependencies) == 0
}

// Group returns the decisions for one manifest section.
func (r *Result) Group(field string) []Decision {
	switch field {
	case constants.FieldDependencies:
		return r.Dependencies
	case constants.FieldDevDependencies:
		return r.DevDependencies
	default:
		return nil
	}
}

// Checker runs the update decision over a manifest.
//
// Fields:
//   - Fetcher: Source of latest versions
//   - Concurrency: Maximum in-flight lookups; 0 starts one lookup per dependency
type Checker struct {
	Fetcher     registry.Fetcher
	Concurrency int
}

// NewChecker creates a Checker with the concurrency limit from configuration.
//
// Parameters:
//   - fetcher: Source of latest versions
//   - cfg: Loaded configuration; nil means unbounded concurrency
//
// Returns:
//   - *Checker: A ready checker
func NewChecker(fetcher registry.Fetcher, cfg *config.Config) *Checker {
	c := &Checker{Fetcher: fetcher}
	if cfg != nil {
		c.Concurrency = cfg.Concurrency
	}
	return c
}

// slot collects the outcome of one lookup at a fixed position.
type slot struct {
	decision Decision
	eligible bool
}

// Check fetches the latest version of every selected dependency and returns
// the eligible updates.
//
// It performs the following operations:
//   - Step 1: Apply the selection filter to both sections
//   - Step 2: Start one lookup per selected dependency in a shared errgroup
//   - Step 3: Wait for all lookups; the first error cancels the rest and is returned
//   - Step 4: Collect eligible decisions in declaration order
//
// Parameters:
//   - ctx: Context for cancellation of the lookups
//   - m: The manifest to check
//   - opts: Mode flags of the run
//
// Returns:
//   - *Result: Eligible updates; nil on error
//   - error: The first lookup failure, as *errors.RegistryFetchError when the
//     fetcher reports one; no partial result is returned
func (c *Checker) Check(ctx context.Context, m *manifest.Manifest, opts config.Options) (*Result, error) {
	g, groupCtx := errgroup.WithContext(ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}

	slots := make(map[string][]slot, len(manifest.Groups))
	for _, field := range manifest.Groups {
		var selected []manifest.Dependency
		for _, dep := range m.Group(field) {
			if !Selected(dep.Specifier, opts) {
				verbose.PackageFiltered(dep.Name, "pinned to latest; use --latest to resolve it")
				continue
			}
			selected = append(selected, dep)
		}

		results := make([]slot, len(selected))
		slots[field] = results
		for i, dep := range selected {
			g.Go(func() error {
				latest, err := c.Fetcher.LatestVersion(groupCtx, dep.Name)
				if err != nil {
					return err
				}
				if !IsValidVersion(latest) {
					return &errors.RegistryFetchError{Package: dep.Name, Err: fmt.Errorf("registry reported invalid version %q", latest)}
				}
				results[i].decision, results[i].eligible = Decide(field, dep, latest, opts)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Dependencies:    collect(slots[constants.FieldDependencies]),
		DevDependencies: collect(slots[constants.FieldDevDependencies]),
	}
	verbose.Infof("Check complete: %d eligible updates", len(result.Dependencies)+len(result.DevDependencies))
	return result, nil
}

// collect keeps the eligible decisions of a section, preserving order.
func collect(results []slot) []Decision {
	var decisions []Decision
	for _, r := range results {
		if r.eligible {
			decisions = append(decisions, r.decision)
		}
	}
	return decisions
}
