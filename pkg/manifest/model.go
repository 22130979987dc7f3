// Package manifest reads and writes package.json while preserving key order
// and every field it does not manage.
package manifest

import (
	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/ncu/pkg/constants"
)

// Groups lists the dependency sections in the order they are checked and reported.
var Groups = []string{constants.FieldDependencies, constants.FieldDevDependencies}

// Dependency is a single declared dependency.
//
// Fields:
//   - Name: The package name as declared
//   - Specifier: The declared version specifier, e.g. "^4.17.0" or "latest"
type Dependency struct {
	Name      string
	Specifier string
}

// Manifest is a parsed package.json.
//
// The full document is kept as an ordered map so unrelated fields and key
// order survive a write. The dependency groups are materialized in key order.
type Manifest struct {
	path   string
	data   *orderedmap.OrderedMap
	groups map[string][]Dependency
}

// Path returns the file the manifest was read from.
func (m *Manifest) Path() string {
	return m.path
}

// Group returns the dependencies of a section in declaration order.
//
// Parameters:
//   - field: constants.FieldDependencies or constants.FieldDevDependencies
//
// Returns:
//   - []Dependency: The declared dependencies; empty when the section is absent
func (m *Manifest) Group(field string) []Dependency {
	return m.groups[field]
}

// Dependencies returns the runtime dependency section.
func (m *Manifest) Dependencies() []Dependency {
	return m.Group(constants.FieldDependencies)
}

// DevDependencies returns the development dependency section.
func (m *Manifest) DevDependencies() []Dependency {
	return m.Group(constants.FieldDevDependencies)
}

// SetSpecifier sets the specifier of a dependency in the given section.
//
// Existing entries keep their position; a new entry is appended. A missing
// section is created at the end of the document.
//
// Parameters:
//   - field: The dependency section to modify
//   - name: The package name
//   - specifier: The new version specifier
func (m *Manifest) SetSpecifier(field, name, specifier string) {
	section := m.section(field)
	section.Set(name, specifier)

	deps := m.groups[field]
	for i := range deps {
		if deps[i].Name == name {
			deps[i].Specifier = specifier
			return
		}
	}
	m.groups[field] = append(deps, Dependency{Name: name, Specifier: specifier})
}

// section returns the ordered map backing a dependency section, creating it if needed.
func (m *Manifest) section(field string) *orderedmap.OrderedMap {
	if raw, ok := m.data.Get(field); ok {
		if section, ok := raw.(*orderedmap.OrderedMap); ok {
			return section
		}
	}
	section := orderedmap.New()
	m.data.Set(field, section)
	return section
}
