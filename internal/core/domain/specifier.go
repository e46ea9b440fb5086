package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Operator is a version constraint operator.
type Operator string

// Supported constraint operators, longest spelling first so parsers can
// match greedily.
const (
	OpArbitrary    Operator = "==="
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpCompatible   Operator = "~="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
)

// Operators lists the known operators in match order.
var Operators = []Operator{
	OpArbitrary, OpEqual, OpNotEqual, OpGreaterEqual, OpLessEqual,
	OpCompatible, OpGreater, OpLess,
}

// Specifier is a single version constraint attached to a requirement,
// e.g. ">=2.1.0" or "==1.2.*".
type Specifier struct {
	// Op is the constraint operator.
	Op Operator

	// Raw is the version text as written, including a trailing ".*" for
	// prefix constraints.
	Raw string

	// Version is the parsed version, nil when Raw does not parse (the
	// invalid-version lint rule reports those) or when Op is "===".
	Version *Version

	// Prefix is true for "==X.Y.*" / "!=X.Y.*" prefix constraints.
	Prefix bool
}

// ParseSpecifier parses a single constraint such as ">= 1.2" or "==1.2.*".
func ParseSpecifier(s string) (Specifier, error) {
	text := strings.TrimSpace(s)

	var op Operator
	for _, candidate := range Operators {
		if strings.HasPrefix(text, string(candidate)) {
			op = candidate
			break
		}
	}
	if op == "" {
		return Specifier{}, zerr.With(ErrInvalidSpecifier, "specifier", s)
	}

	raw := strings.TrimSpace(strings.TrimPrefix(text, string(op)))
	if raw == "" {
		return Specifier{}, zerr.With(ErrInvalidSpecifier, "specifier", s)
	}

	spec := Specifier{Op: op, Raw: raw}

	if op == OpArbitrary {
		// "===" compares raw strings; no version grammar applies.
		return spec, nil
	}

	versionText := raw
	if strings.HasSuffix(raw, ".*") {
		if op != OpEqual && op != OpNotEqual {
			return Specifier{}, zerr.With(ErrInvalidSpecifier, "specifier", s)
		}
		spec.Prefix = true
		versionText = strings.TrimSuffix(raw, ".*")
	}

	if v, err := ParseVersion(versionText); err == nil {
		spec.Version = v
	}

	return spec, nil
}

// String renders the specifier canonically, without interior spaces.
func (s Specifier) String() string {
	return string(s.Op) + s.Raw
}

// Match reports whether the candidate version satisfies the constraint.
// Specifiers whose version text did not parse match nothing.
func (s Specifier) Match(candidate *Version) bool {
	if s.Op == OpArbitrary {
		return strings.TrimSpace(candidate.Original()) == s.Raw
	}
	if s.Version == nil {
		return false
	}

	switch s.Op {
	case OpEqual:
		if s.Prefix {
			return matchPrefix(candidate, s.Version)
		}
		return equalIgnoringLocal(candidate, s.Version)
	case OpNotEqual:
		if s.Prefix {
			return !matchPrefix(candidate, s.Version)
		}
		return !equalIgnoringLocal(candidate, s.Version)
	case OpGreaterEqual:
		return candidate.Compare(s.Version) >= 0
	case OpLessEqual:
		return candidate.Compare(s.Version) <= 0
	case OpGreater:
		return candidate.Compare(s.Version) > 0
	case OpLess:
		return candidate.Compare(s.Version) < 0
	case OpCompatible:
		return matchCompatible(candidate, s.Version)
	default:
		return false
	}
}

// equalIgnoringLocal applies "==" semantics: when the specifier carries no
// local label, the candidate's local label is disregarded.
func equalIgnoringLocal(candidate, spec *Version) bool {
	if spec.Local != "" {
		return candidate.Equal(spec)
	}
	stripped := *candidate
	stripped.Local = ""
	return stripped.Equal(spec)
}

// matchPrefix implements "==X.Y.*": the candidate's padded release must
// start with the specifier's release tuple, under the same epoch.
func matchPrefix(candidate, spec *Version) bool {
	if candidate.Epoch != spec.Epoch {
		return false
	}
	for i, seg := range spec.Release {
		var cseg int
		if i < len(candidate.Release) {
			cseg = candidate.Release[i]
		}
		if cseg != seg {
			return false
		}
	}
	return true
}

// matchCompatible implements "~=X.Y": at least the given version, under the
// prefix obtained by dropping its final release segment.
func matchCompatible(candidate, spec *Version) bool {
	if candidate.Compare(spec) < 0 {
		return false
	}
	if len(spec.Release) < 2 {
		// "~=1" is rejected at parse time by pip; treat as a plain floor.
		return true
	}
	prefix := *spec
	prefix.Release = spec.Release[:len(spec.Release)-1]
	prefix.Pre, prefix.Post, prefix.Dev = nil, nil, nil
	prefix.Local = ""
	return matchPrefix(candidate, &prefix)
}

// SpecifierSet is the ordered list of constraints on one requirement line.
type SpecifierSet []Specifier

// ParseSpecifierSet parses a comma-separated constraint list.
func ParseSpecifierSet(s string) (SpecifierSet, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}

	var set SpecifierSet
	for part := range strings.SplitSeq(trimmed, ",") {
		spec, err := ParseSpecifier(part)
		if err != nil {
			return nil, err
		}
		set = append(set, spec)
	}
	return set, nil
}

// String renders the set canonically: comma-separated, no spaces.
func (set SpecifierSet) String() string {
	parts := make([]string, len(set))
	for i, s := range set {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// Match reports whether the candidate satisfies every constraint in the set.
func (set SpecifierSet) Match(candidate *Version) bool {
	for _, s := range set {
		if !s.Match(candidate) {
			return false
		}
	}
	return true
}

// Pinned reports whether the set pins an exact version ("==" without a
// prefix wildcard, or "===").
func (set SpecifierSet) Pinned() bool {
	for _, s := range set {
		if s.Op == OpArbitrary {
			return true
		}
		if s.Op == OpEqual && !s.Prefix {
			return true
		}
	}
	return false
}

// PinnedVersion returns the exact pinned version when Pinned() holds and the
// version text parsed, nil otherwise.
func (set SpecifierSet) PinnedVersion() *Version {
	for _, s := range set {
		if s.Op == OpEqual && !s.Prefix && s.Version != nil {
			return s.Version
		}
	}
	return nil
}

// Contradictory reports whether the set can never be satisfied, such as
// "==1.0,==2.0" or ">2,<1". It only inspects constraints whose versions
// parsed; unparsable versions are a separate lint finding.
func (set SpecifierSet) Contradictory() bool {
	if pin := set.PinnedVersion(); pin != nil {
		// Every other parsed constraint must admit the pinned version.
		for _, s := range set {
			if s.Version == nil || s.Op == OpArbitrary {
				continue
			}
			if !s.Match(pin) {
				return true
			}
		}
		return false
	}

	lower, lowerExclusive := set.bound(OpGreater, OpGreaterEqual)
	upper, upperExclusive := set.bound(OpLess, OpLessEqual)
	if lower == nil || upper == nil {
		return false
	}

	switch lower.Compare(upper) {
	case 1:
		return true
	case 0:
		return lowerExclusive || upperExclusive
	default:
		return false
	}
}

// bound returns the tightest bound among the given exclusive/inclusive
// operator pair, and whether that bound is exclusive.
func (set SpecifierSet) bound(exclusive, inclusive Operator) (*Version, bool) {
	var best *Version
	bestExclusive := false

	tighter := func(v *Version, excl bool) {
		if v == nil {
			return
		}
		if best == nil {
			best, bestExclusive = v, excl
			return
		}
		c := v.Compare(best)
		// For lower bounds a greater version is tighter; for upper bounds a
		// smaller one is. Exclusive wins ties either way.
		if exclusive == OpGreater && (c > 0 || (c == 0 && excl)) {
			best, bestExclusive = v, excl
		}
		if exclusive == OpLess && (c < 0 || (c == 0 && excl)) {
			best, bestExclusive = v, excl
		}
	}

	for _, s := range set {
		switch s.Op {
		case exclusive:
			tighter(s.Version, true)
		case inclusive:
			tighter(s.Version, false)
		}
	}
	return best, bestExclusive
}
