package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reqwell/reqcheck/internal/adapters/tui"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return model
}

func TestModel_FileLifecycle(t *testing.T) {
	m := tui.NewModel()

	m = update(t, m, tui.MsgFileStarted{Path: "requirements.txt"})
	require.Len(t, m.Files, 1)
	assert.Equal(t, tui.StatusChecking, m.Files[0].Status)

	m = update(t, m, tui.MsgFileResult{Result: domain.FileResult{Path: "requirements.txt"}})
	assert.Equal(t, tui.StatusClean, m.Files[0].Status)

	m = update(t, m, tui.MsgFileResult{Result: domain.FileResult{
		Path: "requirements.txt",
		Findings: []domain.Finding{
			{Rule: domain.RuleDuplicate, Severity: domain.SeverityError, File: "requirements.txt", Line: 2, Message: "requirement flask is already declared"},
		},
	}})
	assert.Equal(t, tui.StatusFailed, m.Files[0].Status)
	require.Len(t, m.Files, 1, "result for a known file must not add a row")
}

func TestModel_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		result domain.FileResult
		want   tui.FileStatus
	}{
		{
			name:   "cached",
			result: domain.FileResult{Path: "a", Cached: true},
			want:   tui.StatusCached,
		},
		{
			name: "warnings only",
			result: domain.FileResult{Path: "a", Findings: []domain.Finding{
				{Severity: domain.SeverityWarning},
			}},
			want: tui.StatusWarned,
		},
		{
			name: "errors",
			result: domain.FileResult{Path: "a", Findings: []domain.Finding{
				{Severity: domain.SeverityError},
			}},
			want: tui.StatusFailed,
		},
		{
			name:   "clean",
			result: domain.FileResult{Path: "a"},
			want:   tui.StatusClean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := update(t, tui.NewModel(), tui.MsgFileResult{Result: tt.result})
			require.Len(t, m.Files, 1)
			assert.Equal(t, tt.want, m.Files[0].Status)
		})
	}
}

func TestModel_SummaryCountsPasses(t *testing.T) {
	m := tui.NewModel()
	m = update(t, m, tui.MsgSummary{Summary: domain.Summary{Files: 2}})
	m = update(t, m, tui.MsgSummary{Summary: domain.Summary{Files: 2, Failed: 1}})

	require.NotNil(t, m.Summary)
	assert.Equal(t, 2, m.Passes)
	assert.Equal(t, 1, m.Summary.Failed)
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := tui.NewModel()
			msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
		})
	}
}
