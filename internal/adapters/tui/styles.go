package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/reqwell/reqcheck/internal/ui/style"
)

const (
	findingsPaneBorderWidth = 2
	chromeHeight            = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Teal).
			Foreground(style.White)

	fileCheckingStyle = lipgloss.NewStyle().
				Foreground(style.Teal).
				Bold(true)

	fileCleanStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	fileWarnedStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	fileFailedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	fileCachedStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
