// Package linter evaluates lint rules over requirement manifests and their
// include trees.
package linter

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Options configure a lint run.
type Options struct {
	// Rules holds the effective rule severities.
	Rules domain.RuleConfig

	// NoCache forces re-evaluation even when fingerprints match.
	NoCache bool

	// Parallelism bounds concurrent root resolution; zero means NumCPU.
	Parallelism int
}

// Linter runs the rule engine. Roots are processed concurrently; each
// root's include tree is linted as a unit so cross-file rules see it whole.
type Linter struct {
	resolver ports.IncludeResolver
	hasher   ports.Hasher
	store    ports.ResultStore
	logger   ports.Logger
}

// NewLinter creates a new Linter.
func NewLinter(resolver ports.IncludeResolver, hasher ports.Hasher, store ports.ResultStore, logger ports.Logger) *Linter {
	return &Linter{
		resolver: resolver,
		hasher:   hasher,
		store:    store,
		logger:   logger,
	}
}

// Run lints every manifest reachable from the given roots and returns one
// result per distinct file, in deterministic order: roots as given, each
// followed by its includes in walk order. Unreadable roots become
// parse-error findings, not errors; the error return is reserved for
// infrastructure failures.
func (l *Linter) Run(ctx context.Context, roots []string, opts Options) ([]domain.FileResult, error) {
	if len(roots) == 0 {
		return nil, domain.ErrNoManifestsSpecified
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	rulesFingerprint := opts.Rules.Fingerprint()

	perRoot := make([][]domain.FileResult, len(roots))
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism)

	for i, root := range roots {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results := l.lintRoot(root, opts, rulesFingerprint)
			mu.Lock()
			perRoot[i] = results
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Roots may share includes; the first occurrence wins.
	var out []domain.FileResult
	seen := make(map[string]bool)
	for _, results := range perRoot {
		for _, r := range results {
			if seen[r.Path] {
				continue
			}
			seen[r.Path] = true
			out = append(out, r)
		}
	}
	return out, nil
}

// Summarize folds results into an aggregate, failing files at the given
// severity threshold.
func Summarize(results []domain.FileResult, failAt domain.Severity) domain.Summary {
	var summary domain.Summary
	for _, r := range results {
		summary.Add(r, failAt)
	}
	return summary
}

// lintRoot resolves one include tree and evaluates every rule over it.
func (l *Linter) lintRoot(root string, opts Options, rulesFingerprint string) []domain.FileResult {
	res, err := l.resolver.Resolve(root)
	if err != nil {
		return []domain.FileResult{{
			Path: root,
			Findings: []domain.Finding{{
				Rule:     domain.RuleParseError,
				Severity: domain.SeverityError,
				File:     root,
				Message:  "cannot read manifest: " + err.Error(),
			}},
		}}
	}

	problems := groupBySeverity(res.Problems, opts.Rules)
	crossFindings := severityMap(crossFileDuplicates(res.Graph), opts.Rules)

	// Walk order is includes-first; emit the root first instead so output
	// leads with the file the user named.
	var results []domain.FileResult
	for m := range res.Graph.Walk() {
		results = append(results, l.lintFile(m, problems, crossFindings, opts, rulesFingerprint))
	}
	for i, r := range results {
		if r.Path == root {
			results[0], results[i] = results[i], results[0]
			break
		}
	}
	return results
}

// lintFile evaluates one manifest, serving a stored result when neither the
// file's fingerprint nor the rule configuration changed. Cross-file findings
// depend on the rest of the include tree, so they are layered on fresh every
// pass and never enter the store.
func (l *Linter) lintFile(m *domain.Manifest, problems, crossFindings map[string][]domain.Finding, opts Options, rulesFingerprint string) domain.FileResult {
	path := m.Path.String()

	fingerprint, err := l.hasher.Fingerprint(path)
	if err != nil {
		l.logger.Warn("cannot fingerprint " + path + "; caching disabled for it")
	}

	if !opts.NoCache && fingerprint != "" {
		record, err := l.store.Get(path)
		if err == nil && record != nil && record.Fingerprint == fingerprint && record.Rules == rulesFingerprint {
			return domain.FileResult{
				Path:        path,
				Fingerprint: fingerprint,
				Findings:    withCrossFindings(record.Findings, crossFindings[path]),
				Cached:      true,
			}
		}
	}

	findings := append([]domain.Finding{}, problems[path]...)
	for _, rule := range fileRules {
		severity := opts.Rules.Severity(rule.id)
		if severity == domain.SeverityOff {
			continue
		}
		for _, f := range rule.check(m) {
			f.Severity = severity
			findings = append(findings, f)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Line < findings[j].Line
	})

	if fingerprint != "" {
		if err := l.store.Put(domain.LintRecord{
			Path:        path,
			Fingerprint: fingerprint,
			Rules:       rulesFingerprint,
			Findings:    findings,
		}); err != nil {
			l.logger.Warn("cannot persist result for " + path)
		}
	}

	return domain.FileResult{
		Path:        path,
		Fingerprint: fingerprint,
		Findings:    withCrossFindings(findings, crossFindings[path]),
	}
}

// withCrossFindings merges the per-file findings with this pass's cross-file
// ones, keeping line order.
func withCrossFindings(fileFindings, cross []domain.Finding) []domain.Finding {
	if len(cross) == 0 {
		return fileFindings
	}
	merged := make([]domain.Finding, 0, len(fileFindings)+len(cross))
	merged = append(merged, fileFindings...)
	merged = append(merged, cross...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Line < merged[j].Line
	})
	return merged
}

// groupBySeverity assigns configured severities to parser problems and
// groups them by file, dropping those whose rule is off.
func groupBySeverity(problems []domain.Finding, rules domain.RuleConfig) map[string][]domain.Finding {
	out := make(map[string][]domain.Finding)
	for _, p := range problems {
		severity := rules.Severity(p.Rule)
		if severity == domain.SeverityOff {
			continue
		}
		p.Severity = severity
		out[p.File] = append(out[p.File], p)
	}
	return out
}

// severityMap applies configured severities to grouped findings, dropping
// files whose findings are all off.
func severityMap(grouped map[string][]domain.Finding, rules domain.RuleConfig) map[string][]domain.Finding {
	out := make(map[string][]domain.Finding, len(grouped))
	for path, findings := range grouped {
		for _, f := range findings {
			severity := rules.Severity(f.Rule)
			if severity == domain.SeverityOff {
				continue
			}
			f.Severity = severity
			out[path] = append(out[path], f)
		}
	}
	return out
}
