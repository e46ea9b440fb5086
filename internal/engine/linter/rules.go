package linter

import (
	"fmt"

	"github.com/reqwell/reqcheck/internal/core/domain"
)

// fileRule evaluates one lint rule against a single manifest. Findings are
// emitted without severity; the engine applies the configured one.
type fileRule struct {
	id    string
	check func(m *domain.Manifest) []domain.Finding
}

// fileRules lists the per-file rules in evaluation order. parse-error and
// duplicate findings come from the parser, cross-file-duplicate from the
// graph pass.
var fileRules = []fileRule{
	{id: domain.RuleInvalidVersion, check: checkInvalidVersion},
	{id: domain.RuleConflict, check: checkConflict},
	{id: domain.RuleNonCanonicalName, check: checkNonCanonicalName},
	{id: domain.RuleUnpinned, check: checkUnpinned},
}

func finding(rule string, m *domain.Manifest, line int, msg string) domain.Finding {
	return domain.Finding{
		Rule:    rule,
		File:    m.Path.String(),
		Line:    line,
		Message: msg,
	}
}

// checkInvalidVersion flags constraints whose version text does not parse.
// "===" constraints are exempt: they compare raw strings.
func checkInvalidVersion(m *domain.Manifest) []domain.Finding {
	var out []domain.Finding
	for _, req := range m.Requirements() {
		for _, spec := range req.Specifiers {
			if spec.Op == domain.OpArbitrary || spec.Version != nil {
				continue
			}
			out = append(out, finding(domain.RuleInvalidVersion, m, req.Line,
				fmt.Sprintf("constraint %s on %s has an invalid version", spec, req.Name)))
		}
	}
	return out
}

// checkConflict flags constraint sets that no version can satisfy.
func checkConflict(m *domain.Manifest) []domain.Finding {
	var out []domain.Finding
	for _, req := range m.Requirements() {
		if req.Specifiers.Contradictory() {
			out = append(out, finding(domain.RuleConflict, m, req.Line,
				fmt.Sprintf("constraints %s on %s can never be satisfied", req.Specifiers, req.Name)))
		}
	}
	return out
}

// checkNonCanonicalName flags names spelled differently from their
// canonical form.
func checkNonCanonicalName(m *domain.Manifest) []domain.Finding {
	var out []domain.Finding
	for _, req := range m.Requirements() {
		if req.Name != req.Canonical {
			out = append(out, finding(domain.RuleNonCanonicalName, m, req.Line,
				fmt.Sprintf("name %s normalizes to %s", req.Name, req.Canonical)))
		}
	}
	return out
}

// checkUnpinned flags requirements without an exact version pin. Direct
// URL references are exempt: the URL is the pin.
func checkUnpinned(m *domain.Manifest) []domain.Finding {
	var out []domain.Finding
	for _, req := range m.Requirements() {
		if req.URL != "" || req.Specifiers.Pinned() {
			continue
		}
		out = append(out, finding(domain.RuleUnpinned, m, req.Line,
			fmt.Sprintf("requirement %s is not pinned to an exact version", req.Name)))
	}
	return out
}

// crossFileDuplicates flags names declared in more than one manifest of an
// include tree. The finding lands on the file later in walk order, which
// is the one that overrides.
func crossFileDuplicates(graph *domain.Graph) map[string][]domain.Finding {
	out := make(map[string][]domain.Finding)
	firstSeen := make(map[domain.InternedString]*domain.Manifest)

	for m := range graph.Walk() {
		for _, req := range m.Requirements() {
			first, ok := firstSeen[req.Canonical]
			if !ok {
				firstSeen[req.Canonical] = m
				continue
			}
			path := m.Path.String()
			out[path] = append(out[path], finding(domain.RuleCrossFileDup, m, req.Line,
				fmt.Sprintf("%s is also declared in %s", req.Canonical, first.Path)))
		}
	}
	return out
}
