package domain_test

import (
	"testing"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRuleConfig_Fingerprint(t *testing.T) {
	a := domain.DefaultRuleConfig()
	b := domain.DefaultRuleConfig()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b[domain.RuleUnpinned] = domain.SeverityError
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestRuleConfig_Severity(t *testing.T) {
	rules := domain.RuleConfig{domain.RuleUnpinned: domain.SeverityWarning}

	assert.Equal(t, domain.SeverityWarning, rules.Severity(domain.RuleUnpinned))
	assert.Equal(t, domain.SeverityOff, rules.Severity(domain.RuleConflict))

	// parse-error cannot be reconfigured.
	rules[domain.RuleParseError] = domain.SeverityOff
	assert.Equal(t, domain.SeverityError, rules.Severity(domain.RuleParseError))
}
