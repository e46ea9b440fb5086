package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reqwell/reqcheck/internal/adapters/tui"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestView_ListsFilesAndFindings(t *testing.T) {
	m := tui.NewModel()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, tui.MsgFileStarted{Path: "requirements.txt"})
	m = update(t, m, tui.MsgFileResult{Result: domain.FileResult{
		Path: "requirements.txt",
		Findings: []domain.Finding{
			{Rule: domain.RuleConflict, Severity: domain.SeverityError, File: "requirements.txt", Line: 3, Message: "constraints >2,<1 on six can never be satisfied"},
		},
	}})
	m = update(t, m, tui.MsgSummary{Summary: domain.Summary{Files: 1, Failed: 1, Errors: 1}})

	view := m.View()
	assert.Contains(t, view, "reqcheck watch")
	assert.Contains(t, view, "requirements.txt")
	assert.Contains(t, view, "can never be satisfied")
	assert.Contains(t, view, "pass 1: 1 file(s), 1 failed, 1 error(s), 0 warning(s)")
}

func TestView_FooterBeforeFirstSummary(t *testing.T) {
	m := tui.NewModel()
	assert.Contains(t, m.View(), "checking...")
}
