// Package domain contains the core model for requirements manifests:
// names, versions, specifiers, manifests and their include graph.
package domain

import "go.trai.ch/zerr"

// Manifest is the parsed content of one requirements file. Requirement
// order is preserved; identity is by canonical name.
type Manifest struct {
	// Path is the source file path as given to the parser.
	Path InternedString

	requirements []Requirement
	index        map[InternedString]int
	directives   []Directive
}

// NewManifest creates an empty manifest for the given path.
func NewManifest(path string) *Manifest {
	return &Manifest{
		Path:  NewInternedString(path),
		index: make(map[InternedString]int),
	}
}

// Add appends a requirement. It returns ErrDuplicateRequirement when the
// canonical name is already declared, with both spellings in the metadata.
func (m *Manifest) Add(r Requirement) error {
	if i, exists := m.index[r.Canonical]; exists {
		err := zerr.With(ErrDuplicateRequirement, "name", r.Name.String())
		err = zerr.With(err, "first_declared", m.requirements[i].Name.String())
		err = zerr.With(err, "line", r.Line)
		return err
	}
	m.index[r.Canonical] = len(m.requirements)
	m.requirements = append(m.requirements, r)
	return nil
}

// AddDirective appends a directive line.
func (m *Manifest) AddDirective(d Directive) {
	m.directives = append(m.directives, d)
}

// Requirements returns the requirements in declaration order.
func (m *Manifest) Requirements() []Requirement {
	return m.requirements
}

// Directives returns the directive lines in declaration order.
func (m *Manifest) Directives() []Directive {
	return m.directives
}

// Includes returns the -r and -c directives in declaration order.
func (m *Manifest) Includes() []Directive {
	var includes []Directive
	for _, d := range m.directives {
		if d.IsInclude() {
			includes = append(includes, d)
		}
	}
	return includes
}

// Lookup finds a requirement by name; the name is canonicalized first.
func (m *Manifest) Lookup(name string) (Requirement, bool) {
	i, ok := m.index[NewInternedString(CanonicalName(name))]
	if !ok {
		return Requirement{}, false
	}
	return m.requirements[i], true
}

// Len returns the number of requirements.
func (m *Manifest) Len() int {
	return len(m.requirements)
}

// Mapping returns canonical package name -> version constraint, the
// flattened view a resolver consumes. Unconstrained requirements map to "".
func (m *Manifest) Mapping() map[string]string {
	out := make(map[string]string, len(m.requirements))
	for _, r := range m.requirements {
		out[r.Canonical.String()] = r.Constraint()
	}
	return out
}
