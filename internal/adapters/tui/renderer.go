package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer drives the watch view, translating renderer callbacks into
// bubbletea messages.
type Renderer struct {
	program *tea.Program
	done    chan error
}

// NewRenderer creates a watch view renderer.
func NewRenderer() *Renderer {
	return &Renderer{done: make(chan error, 1)}
}

// Start launches the UI loop.
func (r *Renderer) Start(ctx context.Context) error {
	r.program = tea.NewProgram(
		NewModel(),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	go func() {
		_, err := r.program.Run()
		r.done <- err
	}()

	return nil
}

// FileStarted reports that linting began for a manifest.
func (r *Renderer) FileStarted(path string) {
	r.program.Send(MsgFileStarted{Path: path})
}

// FileResult reports the outcome for one manifest.
func (r *Renderer) FileResult(result domain.FileResult) {
	r.program.Send(MsgFileResult{Result: result})
}

// Summary reports the aggregate once a pass completes.
func (r *Renderer) Summary(summary domain.Summary) {
	r.program.Send(MsgSummary{Summary: summary})
}

// Stop asks the UI loop to quit.
func (r *Renderer) Stop() error {
	if r.program != nil {
		r.program.Quit()
	}
	return nil
}

// Wait blocks until the UI loop has terminated. A quit initiated by the
// user (q or ctrl+c) is not an error.
func (r *Renderer) Wait() error {
	if r.program == nil {
		return nil
	}
	if err := <-r.done; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return zerr.Wrap(err, "watch view failed")
	}
	return nil
}
