package reqfile

import (
	"strings"

	"github.com/reqwell/reqcheck/internal/core/domain"
)

// parseRequirement parses the content of a requirement line (comment
// already stripped): name, optional extras, then either a direct "@ url"
// reference or a comma-separated specifier list, optionally followed by an
// environment marker after ";".
func parseRequirement(text, path string, line int) (domain.Requirement, *domain.Finding) {
	fail := func(msg string) (domain.Requirement, *domain.Finding) {
		return domain.Requirement{}, &domain.Finding{
			Rule:    domain.RuleParseError,
			File:    path,
			Line:    line,
			Message: msg,
		}
	}

	// The marker is everything after the first ";"; it is opaque here.
	var marker string
	if i := strings.IndexByte(text, ';'); i >= 0 {
		marker = strings.TrimSpace(text[i+1:])
		text = strings.TrimSpace(text[:i])
		if marker == "" {
			return fail("empty environment marker after ';'")
		}
	}

	// Direct references: "name @ url".
	var url string
	if i := strings.Index(text, "@"); i >= 0 {
		url = strings.TrimSpace(text[i+1:])
		text = strings.TrimSpace(text[:i])
		if url == "" {
			return fail("empty URL after '@'")
		}
	}

	nameEnd := strings.IndexAny(text, "=<>!~ \t")
	namePart := text
	specPart := ""
	if nameEnd >= 0 {
		namePart = strings.TrimSpace(text[:nameEnd])
		specPart = strings.TrimSpace(text[nameEnd:])
	}

	// Whitespace may separate the name from its extras bracket.
	if strings.HasPrefix(specPart, "[") {
		bracketEnd := strings.IndexByte(specPart, ']')
		if bracketEnd < 0 {
			return fail("unbalanced extras bracket in " + text)
		}
		namePart += specPart[:bracketEnd+1]
		specPart = strings.TrimSpace(specPart[bracketEnd+1:])
	}

	name, extras, ok := splitExtras(namePart)
	if !ok {
		return fail("unbalanced extras bracket in " + namePart)
	}
	if name == "" {
		return fail("missing package name")
	}
	if err := domain.ValidateName(name); err != nil {
		return fail("invalid package name " + name)
	}

	req := domain.NewRequirement(name)
	req.Extras = extras
	req.Marker = marker
	req.URL = url

	if specPart != "" {
		if url != "" {
			return fail("direct reference cannot carry version constraints")
		}
		set, err := domain.ParseSpecifierSet(specPart)
		if err != nil {
			return fail("invalid constraint " + specPart)
		}
		req.Specifiers = set
	}

	return req, nil
}

// splitExtras splits "name[extra1,extra2]" into the bare name and its
// extras list. Reports ok=false on an unbalanced or misplaced bracket.
func splitExtras(s string) (name string, extras []string, ok bool) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, nil, true
	}
	if !strings.HasSuffix(s, "]") {
		return "", nil, false
	}

	name = s[:open]
	inner := s[open+1 : len(s)-1]
	for part := range strings.SplitSeq(inner, ",") {
		extra := strings.TrimSpace(part)
		if extra != "" {
			extras = append(extras, extra)
		}
	}
	return name, extras, true
}
