package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/ncu/pkg/verbose"
)

// writeFileFunc is a variable that holds the os.WriteFile function.
// This allows for dependency injection during testing.
var writeFileFunc = os.WriteFile

// Write serializes the manifest back to the path it was read from.
//
// This is a full overwrite, not an atomic replace. The original file mode is
// kept when the file still exists.
//
// Parameters:
//   - m: The manifest to write
//
// Returns:
//   - error: Returns error if marshaling or writing fails; returns nil on success
func Write(m *Manifest) error {
	content, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", m.path, err)
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(m.path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := writeFileFunc(m.path, content, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.path, err)
	}
	verbose.Infof("Manifest written: %s (%d bytes)", m.path, len(content))
	return nil
}

// Marshal encodes the manifest as JSON with two-space indentation.
//
// It performs the following operations:
//   - Step 1: Disable HTML escaping on every nested ordered map
//   - Step 2: Encode with two-space indentation
//
// Returns:
//   - []byte: JSON bytes ending in a newline
//   - error: Returns error if encoding fails; returns nil on success
func (m *Manifest) Marshal() ([]byte, error) {
	disableOrderedMapEscape(m.data)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(m.data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// disableOrderedMapEscape recursively disables HTML escaping for an ordered map
// and all nested maps, so ranges like ">=1.0.0 <2.0.0" are written verbatim.
func disableOrderedMapEscape(m *orderedmap.OrderedMap) {
	m.SetEscapeHTML(false)
	for _, key := range m.Keys() {
		val, _ := m.Get(key)
		m.Set(key, normalizeOrderedMapEscaping(val))
	}
}

// normalizeOrderedMapEscaping disables HTML escaping inside a single value,
// turning nested ordered maps into pointers so the setting sticks.
func normalizeOrderedMapEscaping(val interface{}) interface{} {
	switch v := val.(type) {
	case *orderedmap.OrderedMap:
		disableOrderedMapEscape(v)
		return v
	case orderedmap.OrderedMap:
		disableOrderedMapEscape(&v)
		return &v
	case []interface{}:
		for i, item := range v {
			v[i] = normalizeOrderedMapEscaping(item)
		}
		return v
	default:
		return val
	}
}
