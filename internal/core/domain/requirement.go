package domain

import "strings"

// Requirement models one dependency line of a manifest.
type Requirement struct {
	// Name is the package name as written (e.g. "Pillow_SIMD").
	Name InternedString

	// Canonical is the normalized name used for identity (e.g. "pillow-simd").
	Canonical InternedString

	// Extras lists requested extras, in written order.
	Extras []string

	// Specifiers holds the version constraints, possibly empty.
	Specifiers SpecifierSet

	// Marker is the raw environment marker after ";", empty if absent.
	Marker string

	// Comment is the trailing comment text without the leading "#".
	Comment string

	// URL is the direct reference after "@" for URL requirements; such
	// lines carry no version constraints.
	URL string

	// Line is the 1-based logical line number in the source file.
	Line int
}

// NewRequirement builds a requirement from a raw name, computing the
// canonical form.
func NewRequirement(name string) Requirement {
	return Requirement{
		Name:      NewInternedString(name),
		Canonical: NewInternedString(CanonicalName(name)),
	}
}

// Constraint returns the canonical rendering of the requirement's version
// constraint, empty when unconstrained.
func (r Requirement) Constraint() string {
	if r.URL != "" {
		return "@ " + r.URL
	}
	return r.Specifiers.String()
}

// DirectiveKind classifies non-requirement manifest lines.
type DirectiveKind int

const (
	// DirectiveInclude is -r / --requirement.
	DirectiveInclude DirectiveKind = iota
	// DirectiveConstraint is -c / --constraint.
	DirectiveConstraint
	// DirectiveOption is any other -/-- option line, preserved verbatim.
	DirectiveOption
	// DirectiveComment is a standalone comment line.
	DirectiveComment
	// DirectiveBlank is a blank separator line, kept so formatting
	// round-trips section breaks.
	DirectiveBlank
)

// Directive is a non-requirement line such as "-r base.txt" or
// "--index-url https://pypi.example.org/simple".
type Directive struct {
	Kind DirectiveKind

	// Value is the directive argument: the included path for include and
	// constraint directives, the raw text for options, the text after "#"
	// for comments.
	Value string

	// Line is the 1-based logical line number in the source file.
	Line int
}

// IsInclude reports whether the directive pulls in another manifest file.
func (d Directive) IsInclude() bool {
	return d.Kind == DirectiveInclude || d.Kind == DirectiveConstraint
}

// String renders the directive canonically.
func (d Directive) String() string {
	switch d.Kind {
	case DirectiveInclude:
		return "-r " + d.Value
	case DirectiveConstraint:
		return "-c " + d.Value
	case DirectiveComment:
		return "# " + d.Value
	case DirectiveBlank:
		return ""
	default:
		return strings.TrimSpace(d.Value)
	}
}
