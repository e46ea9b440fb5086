package domain

// LintRecord is a persisted lint result for one manifest. It stays valid
// while both the file's fingerprint and the rule configuration that
// produced it are unchanged, letting watch mode skip re-linting untouched
// files. Cross-file findings are never recorded: they depend on the rest
// of the include tree and are recomputed every pass.
type LintRecord struct {
	Path        string    `json:"path"`
	Fingerprint string    `json:"fingerprint"`
	Rules       string    `json:"rules"`
	Findings    []Finding `json:"findings"`
}
