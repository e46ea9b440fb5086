package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Rule identifiers. The parser emits parse-error and duplicate findings;
// the remaining rules run in the lint engine.
const (
	RuleParseError       = "parse-error"
	RuleDuplicate        = "duplicate"
	RuleInvalidVersion   = "invalid-version"
	RuleConflict         = "conflict"
	RuleNonCanonicalName = "non-canonical-name"
	RuleUnpinned         = "unpinned"
	RuleCrossFileDup     = "cross-file-duplicate"
)

// RuleConfig maps rule IDs to their effective severity.
type RuleConfig map[string]Severity

// DefaultRuleConfig returns the built-in severities. parse-error is not
// configurable and always fails; unpinned is off unless opted in.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		RuleParseError:       SeverityError,
		RuleDuplicate:        SeverityError,
		RuleInvalidVersion:   SeverityError,
		RuleConflict:         SeverityError,
		RuleNonCanonicalName: SeverityWarning,
		RuleUnpinned:         SeverityOff,
		RuleCrossFileDup:     SeverityWarning,
	}
}

// Severity returns the effective severity for a rule, defaulting to off for
// unknown rules so stale configuration entries stay inert.
func (c RuleConfig) Severity(rule string) Severity {
	if rule == RuleParseError {
		return SeverityError
	}
	sev, ok := c[rule]
	if !ok {
		return SeverityOff
	}
	return sev
}

// Fingerprint returns a stable hash of the effective severities. Cached
// lint results carry it so a configuration change invalidates them.
func (c RuleConfig) Fingerprint() string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := xxhash.New()
	for _, id := range ids {
		_, _ = h.WriteString(id)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(c[id].String())
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Known reports whether the rule ID is one this version understands.
func Known(rule string) bool {
	switch rule {
	case RuleParseError, RuleDuplicate, RuleInvalidVersion, RuleConflict,
		RuleNonCanonicalName, RuleUnpinned, RuleCrossFileDup:
		return true
	default:
		return false
	}
}
