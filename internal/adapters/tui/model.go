// Package tui provides the interactive watch view.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reqwell/reqcheck/internal/core/domain"
)

// FileStatus represents the current state of a manifest in the view.
type FileStatus string

const (
	// StatusChecking indicates the file is being linted.
	StatusChecking FileStatus = "Checking"
	// StatusClean indicates the last pass found nothing.
	StatusClean FileStatus = "Clean"
	// StatusWarned indicates the last pass found only warnings.
	StatusWarned FileStatus = "Warned"
	// StatusFailed indicates the last pass found errors.
	StatusFailed FileStatus = "Failed"
	// StatusCached indicates the result was served from the store.
	StatusCached FileStatus = "Cached"
)

// MsgFileStarted reports that linting began for a manifest.
type MsgFileStarted struct {
	Path string
}

// MsgFileResult reports the outcome for one manifest.
type MsgFileResult struct {
	Result domain.FileResult
}

// MsgSummary reports the aggregate once a pass completes.
type MsgSummary struct {
	Summary domain.Summary
}

// FileNode represents a single manifest in the UI list.
type FileNode struct {
	Path     string
	Status   FileStatus
	Findings []domain.Finding
}

// Model represents the watch view state.
type Model struct {
	Files    []FileNode
	FileMap  map[string]int
	Viewport viewport.Model
	Summary  *domain.Summary
	Passes   int
}

// NewModel creates a new watch view model.
func NewModel() Model {
	return Model{
		FileMap:  make(map[string]int),
		Viewport: viewport.New(0, 0),
	}
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Viewport.Width = msg.Width - findingsPaneBorderWidth
		m.Viewport.Height = msg.Height - chromeHeight

	case MsgFileStarted:
		m = m.upsert(msg.Path, func(node *FileNode) {
			node.Status = StatusChecking
		})

	case MsgFileResult:
		m = m.upsert(msg.Result.Path, func(node *FileNode) {
			node.Status = statusOf(msg.Result)
			node.Findings = msg.Result.Findings
		})
		m.Viewport.SetContent(m.findingsContent())
		m.Viewport.GotoBottom()

	case MsgSummary:
		summary := msg.Summary
		m.Summary = &summary
		m.Passes++
	}

	return m, nil
}

// upsert applies fn to the node for path, creating it if unseen.
func (m Model) upsert(path string, fn func(node *FileNode)) Model {
	idx, ok := m.FileMap[path]
	if !ok {
		idx = len(m.Files)
		m.Files = append(m.Files, FileNode{Path: path})
		m.FileMap[path] = idx
	}
	fn(&m.Files[idx])
	return m
}

func statusOf(result domain.FileResult) FileStatus {
	if result.Cached {
		return StatusCached
	}
	if result.Failed(domain.SeverityError) {
		return StatusFailed
	}
	if len(result.Findings) > 0 {
		return StatusWarned
	}
	return StatusClean
}

// findingsContent renders all current findings, file order, line order.
func (m Model) findingsContent() string {
	var s strings.Builder
	for _, node := range m.Files {
		for _, f := range node.Findings {
			s.WriteString(f.String())
			s.WriteByte('\n')
		}
	}
	return s.String()
}
