package manifest

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/ncu/pkg/errors"
	"github.com/ajxudir/ncu/pkg/verbose"
)

// readFileFunc is a variable that holds the os.ReadFile function.
// This allows for dependency injection during testing.
var readFileFunc = os.ReadFile

// Read loads the manifest at path.
//
// Parameters:
//   - path: Location of package.json
//
// Returns:
//   - *Manifest: The parsed manifest
//   - error: errors.ErrManifestNotFound (wrapped with path) if the file does not exist,
//     *errors.ManifestParseError if the content is not a valid manifest, or the read error
func Read(path string) (*Manifest, error) {
	content, err := readFileFunc(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errors.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m, err := Parse(path, content)
	if err != nil {
		return nil, err
	}
	verbose.Infof("Manifest loaded: %s (%d dependencies, %d devDependencies)", path, len(m.Dependencies()), len(m.DevDependencies()))
	return m, nil
}

// Parse decodes manifest content.
//
// It performs the following operations:
//   - Step 1: Require a JSON object at the top level
//   - Step 2: Unmarshal into an ordered map to preserve field order
//   - Step 3: Materialize both dependency sections in key order
//
// Parameters:
//   - path: The path reported in errors and used for writing back
//   - content: Raw JSON content
//
// Returns:
//   - *Manifest: The parsed manifest
//   - error: *errors.ManifestParseError when the content is not a valid manifest
func Parse(path string, content []byte) (*Manifest, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &errors.ManifestParseError{Path: path, Err: fmt.Errorf("top-level value must be a JSON object")}
	}

	data := orderedmap.New()
	if err := json.Unmarshal(trimmed, data); err != nil {
		return nil, &errors.ManifestParseError{Path: path, Err: err}
	}

	m := &Manifest{path: path, data: data, groups: make(map[string][]Dependency, len(Groups))}
	for _, field := range Groups {
		deps, err := m.loadGroup(field)
		if err != nil {
			return nil, &errors.ManifestParseError{Path: path, Err: err}
		}
		m.groups[field] = deps
	}

	return m, nil
}

// loadGroup converts one dependency section into an ordered map pointer and
// extracts its string-valued entries.
func (m *Manifest) loadGroup(field string) ([]Dependency, error) {
	raw, ok := m.data.Get(field)
	if !ok || raw == nil {
		return nil, nil
	}

	var section *orderedmap.OrderedMap
	switch v := raw.(type) {
	case orderedmap.OrderedMap:
		section = &v
	case *orderedmap.OrderedMap:
		section = v
	default:
		return nil, fmt.Errorf("%s must be an object, got %T", field, raw)
	}
	m.data.Set(field, section)

	deps := make([]Dependency, 0, len(section.Keys()))
	for _, name := range section.Keys() {
		val, _ := section.Get(name)
		spec, ok := val.(string)
		if !ok {
			verbose.PackageFiltered(name, fmt.Sprintf("non-string specifier in %s", field))
			continue
		}
		deps = append(deps, Dependency{Name: name, Specifier: spec})
	}
	return deps, nil
}
