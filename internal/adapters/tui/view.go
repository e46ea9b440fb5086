package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reqwell/reqcheck/internal/ui/style"
)

// View renders the watch view: a manifest list, the findings pane, and a
// summary footer.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("reqcheck watch"),
		m.fileList(),
		m.Viewport.View(),
		m.footer(),
	)
}

func (m Model) fileList() string {
	var s strings.Builder

	for _, node := range m.Files {
		var lineStyle lipgloss.Style
		var icon string

		switch node.Status {
		case StatusChecking:
			lineStyle, icon = fileCheckingStyle, style.Dot
		case StatusClean:
			lineStyle, icon = fileCleanStyle, style.Check
		case StatusWarned:
			lineStyle, icon = fileWarnedStyle, style.Warning
		case StatusFailed:
			lineStyle, icon = fileFailedStyle, style.Cross
		case StatusCached:
			lineStyle, icon = fileCachedStyle, style.Check
		default:
			lineStyle, icon = footerStyle, style.Circle
		}

		line := fmt.Sprintf("%s %s", icon, node.Path)
		if node.Status == StatusCached {
			line += " (cached)"
		}
		s.WriteString(lineStyle.Render(line) + "\n")
	}

	return s.String()
}

func (m Model) footer() string {
	if m.Summary == nil {
		return footerStyle.Render("checking... (q to quit)")
	}
	return footerStyle.Render(fmt.Sprintf(
		"pass %d: %d file(s), %d failed, %d error(s), %d warning(s)  (q to quit)",
		m.Passes, m.Summary.Files, m.Summary.Failed, m.Summary.Errors, m.Summary.Warnings,
	))
}
