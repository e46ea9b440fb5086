package linter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reqwell/reqcheck/internal/adapters/cache"
	"github.com/reqwell/reqcheck/internal/adapters/fs"
	"github.com/reqwell/reqcheck/internal/adapters/logger"
	"github.com/reqwell/reqcheck/internal/adapters/reqfile"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/engine/linter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinter(t *testing.T) *linter.Linter {
	t.Helper()
	return linter.NewLinter(
		fs.NewResolver(reqfile.NewParser()),
		fs.NewHasher(),
		cache.NewStoreAt(filepath.Join(t.TempDir(), "results")),
		logger.New(),
	)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func defaultOptions() linter.Options {
	return linter.Options{Rules: domain.DefaultRuleConfig()}
}

func rulesOf(findings []domain.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Rule
	}
	return out
}

func TestLinter_Run_CleanFile(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "requirements.txt", "flask==2.3.2\nrequests==2.28.1\n")

	results, err := newLinter(t).Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Findings)
	assert.NotEmpty(t, results[0].Fingerprint)
	assert.False(t, results[0].Cached)
}

func TestLinter_Run_Findings(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "requirements.txt",
		"Django==4.2\nflask==2.0\nFlask>=1.0\nrequests==1.0#bad\nsix>2,<1\npytest\n")

	results, err := newLinter(t).Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)

	findings := results[0].Findings
	assert.Equal(t, []string{
		domain.RuleNonCanonicalName,
		domain.RuleDuplicate,
		domain.RuleInvalidVersion,
		domain.RuleConflict,
	}, rulesOf(findings))
	assert.Equal(t, []int{1, 3, 4, 5}, linesOf(findings))

	summary := linter.Summarize(results, domain.SeverityError)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Errors)
	assert.Equal(t, 1, summary.Warnings)
}

func linesOf(findings []domain.Finding) []int {
	out := make([]int, len(findings))
	for i, f := range findings {
		out[i] = f.Line
	}
	return out
}

func TestLinter_Run_UnpinnedOptIn(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "requirements.txt", "flask>=2.0\n")

	rules := domain.DefaultRuleConfig()
	rules[domain.RuleUnpinned] = domain.SeverityWarning

	results, err := newLinter(t).Run(t.Context(), []string{root}, linter.Options{Rules: rules})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Findings, 1)
	assert.Equal(t, domain.RuleUnpinned, results[0].Findings[0].Rule)
	assert.Equal(t, domain.SeverityWarning, results[0].Findings[0].Severity)
}

func TestLinter_Run_CrossFileDuplicate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.txt", "requests==2.28.1\n")
	root := writeFile(t, dir, "requirements.txt", "-r base.txt\nrequests==2.31.0\n")

	results, err := newLinter(t).Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Root first, includes after.
	assert.Equal(t, root, results[0].Path)
	require.Len(t, results[0].Findings, 1)
	assert.Equal(t, domain.RuleCrossFileDup, results[0].Findings[0].Rule)
	assert.Contains(t, results[0].Findings[0].Message, "base.txt")
	assert.Empty(t, results[1].Findings)
}

func TestLinter_Run_CachesUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "requirements.txt", "flask==2.3.2\n")
	l := newLinter(t)

	first, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	assert.False(t, first[0].Cached)

	second, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	assert.True(t, second[0].Cached)
	assert.Equal(t, first[0].Fingerprint, second[0].Fingerprint)

	// A content change invalidates the record.
	writeFile(t, dir, "requirements.txt", "flask==2.3.3\n")
	third, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	assert.False(t, third[0].Cached)
}

func TestLinter_Run_CrossFileDuplicateClearsAfterIncludeEdit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.txt", "requests==2.28.1\n")
	root := writeFile(t, dir, "requirements.txt", "-r base.txt\nrequests==2.31.0\n")
	l := newLinter(t)

	first, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	require.Len(t, first[0].Findings, 1)
	assert.Equal(t, domain.RuleCrossFileDup, first[0].Findings[0].Rule)

	// Removing the duplicate from the included file must clear the finding
	// on the root even though the root itself is unchanged.
	writeFile(t, dir, "base.txt", "six==1.16.0\n")
	second, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, root, second[0].Path)
	assert.True(t, second[0].Cached)
	assert.Empty(t, second[0].Findings)
}

func TestLinter_Run_RuleConfigChangeInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "requirements.txt", "flask>=2.0\n")
	l := newLinter(t)

	first, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, first[0].Findings)

	rules := domain.DefaultRuleConfig()
	rules[domain.RuleUnpinned] = domain.SeverityError

	second, err := l.Run(t.Context(), []string{root}, linter.Options{Rules: rules})
	require.NoError(t, err)
	assert.False(t, second[0].Cached)
	require.Len(t, second[0].Findings, 1)
	assert.Equal(t, domain.RuleUnpinned, second[0].Findings[0].Rule)
	assert.Equal(t, domain.SeverityError, second[0].Findings[0].Severity)

	// The same configuration hits the cache again.
	third, err := l.Run(t.Context(), []string{root}, linter.Options{Rules: rules})
	require.NoError(t, err)
	assert.True(t, third[0].Cached)
	require.Len(t, third[0].Findings, 1)
}

func TestLinter_Run_NoCache(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "requirements.txt", "flask==2.3.2\n")
	l := newLinter(t)

	_, err := l.Run(t.Context(), []string{root}, defaultOptions())
	require.NoError(t, err)

	opts := defaultOptions()
	opts.NoCache = true
	results, err := l.Run(t.Context(), []string{root}, opts)
	require.NoError(t, err)
	assert.False(t, results[0].Cached)
}

func TestLinter_Run_UnreadableRoot(t *testing.T) {
	results, err := newLinter(t).Run(t.Context(), []string{filepath.Join(t.TempDir(), "missing.txt")}, defaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Findings, 1)
	assert.Equal(t, domain.RuleParseError, results[0].Findings[0].Rule)
	assert.Equal(t, domain.SeverityError, results[0].Findings[0].Severity)
}

func TestLinter_Run_NoRoots(t *testing.T) {
	_, err := newLinter(t).Run(t.Context(), nil, defaultOptions())
	require.ErrorIs(t, err, domain.ErrNoManifestsSpecified)
}

func TestLinter_Run_SharedIncludeReportedOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.txt", "six==1.16.0\n")
	a := writeFile(t, dir, "a.txt", "-r common.txt\n")
	b := writeFile(t, dir, "b.txt", "-r common.txt\n")

	results, err := newLinter(t).Run(t.Context(), []string{a, b}, defaultOptions())
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
