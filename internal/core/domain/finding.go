package domain

import "fmt"

// Severity classifies how serious a lint finding is.
type Severity int

const (
	// SeverityOff disables a rule entirely.
	SeverityOff Severity = iota
	// SeverityWarning reports without failing the run.
	SeverityWarning
	// SeverityError fails the run.
	SeverityError
)

// String returns the configuration spelling of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler so findings serialize with
// readable severities.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", string(text))
	}
	*s = parsed
	return nil
}

// ParseSeverity parses the configuration spelling of a severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "off":
		return SeverityOff, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// Finding is one lint result tied to a manifest position.
type Finding struct {
	// Rule is the rule identifier, e.g. "duplicate" or "invalid-version".
	Rule string `json:"rule"`

	Severity Severity `json:"severity"`

	// File is the manifest path the finding refers to.
	File string `json:"file"`

	// Line is the 1-based logical line number, 0 when file-scoped.
	Line int `json:"line,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// String renders the finding in the conventional file:line style.
func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s (%s)", f.File, f.Line, f.Severity, f.Message, f.Rule)
	}
	return fmt.Sprintf("%s: %s: %s (%s)", f.File, f.Severity, f.Message, f.Rule)
}

// ParseResult is the outcome of parsing one manifest file: the model plus
// any line-level problems the parser recovered from.
type ParseResult struct {
	Manifest *Manifest
	Problems []Finding
}

// FileResult is the outcome of linting one manifest file.
type FileResult struct {
	// Path is the manifest path.
	Path string `json:"path"`

	// Fingerprint is the content hash the result was computed against.
	Fingerprint string `json:"fingerprint"`

	// Findings lists lint findings in file order.
	Findings []Finding `json:"findings"`

	// Cached is true when the result was served from the result store.
	Cached bool `json:"cached,omitempty"`
}

// Failed reports whether the result contains a finding at or above the
// given failure severity.
func (r FileResult) Failed(failAt Severity) bool {
	for _, f := range r.Findings {
		if f.Severity >= failAt {
			return true
		}
	}
	return false
}

// Summary aggregates a lint run across files.
type Summary struct {
	Files    int `json:"files"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Add folds one file result into the summary.
func (s *Summary) Add(r FileResult, failAt Severity) {
	s.Files++
	if r.Failed(failAt) {
		s.Failed++
	} else {
		s.Passed++
	}
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityWarning:
			s.Warnings++
		case SeverityError:
			s.Errors++
		}
	}
}
