package render_test

import (
	"bytes"
	"testing"

	"github.com/reqwell/reqcheck/internal/adapters/render"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func sampleResults() ([]domain.FileResult, domain.Summary) {
	results := []domain.FileResult{
		{
			Path:        "base.txt",
			Fingerprint: "abc123",
			Cached:      true,
		},
		{
			Path:        "requirements.txt",
			Fingerprint: "def456",
			Findings: []domain.Finding{
				{
					Rule:     domain.RuleDuplicate,
					Severity: domain.SeverityError,
					File:     "requirements.txt",
					Line:     4,
					Message:  "requirement flask is already declared",
				},
				{
					Rule:     domain.RuleNonCanonicalName,
					Severity: domain.SeverityWarning,
					File:     "requirements.txt",
					Line:     7,
					Message:  "name Flask_Login is not canonical",
				},
			},
		},
	}

	var summary domain.Summary
	for _, r := range results {
		summary.Add(r, domain.SeverityError)
	}
	return results, summary
}

func renderAll(t *testing.T, r ports.Renderer) {
	t.Helper()
	results, summary := sampleResults()

	require.NoError(t, r.Start(t.Context()))
	for _, result := range results {
		r.FileStarted(result.Path)
		r.FileResult(result)
	}
	r.Summary(summary)
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())
}

func TestTextRenderer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	renderAll(t, render.NewTextRenderer(buf))

	g := goldie.New(t)
	g.Assert(t, "text_report", buf.Bytes())
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderAll(t, render.NewJSONRenderer(buf))

	g := goldie.New(t)
	g.Assert(t, "json_report", buf.Bytes())
}

func TestJSONRenderer_StopWithoutSummaryStillEmitsReport(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.NewJSONRenderer(buf)
	require.NoError(t, r.Stop())

	g := goldie.New(t)
	g.Assert(t, "json_empty", buf.Bytes())
}
