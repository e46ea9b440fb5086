// Package render implements the result renderers: plain line output for
// terminals and CI, and a machine-readable JSON report.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"github.com/reqwell/reqcheck/internal/ui/output"
	"github.com/reqwell/reqcheck/internal/ui/style"
)

var _ ports.Renderer = (*TextRenderer)(nil)

// TextRenderer prints findings chronologically, one line per finding, in
// the conventional file:line format editors know how to jump to.
type TextRenderer struct {
	stdout io.Writer
	out    *termenv.Output

	mu sync.Mutex
}

// NewTextRenderer creates a TextRenderer. A nil writer defaults to stdout.
func NewTextRenderer(stdout io.Writer) *TextRenderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &TextRenderer{
		stdout: stdout,
		out:    termenv.NewOutput(stdout, termenv.WithProfile(output.ColorProfileANSI())),
	}
}

// Start is a no-op for the synchronous renderer.
func (r *TextRenderer) Start(_ context.Context) error {
	return nil
}

// FileStarted is a no-op; files are only reported once their result is in.
func (r *TextRenderer) FileStarted(_ string) {}

// FileResult prints every finding of the file, or a check mark when clean.
func (r *TextRenderer) FileResult(result domain.FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(result.Findings) == 0 {
		icon := r.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
		suffix := ""
		if result.Cached {
			suffix = " (cached)"
		}
		_, _ = fmt.Fprintf(r.stdout, "%s %s%s\n", icon, result.Path, suffix)
		return
	}

	for _, f := range result.Findings {
		_, _ = fmt.Fprintln(r.stdout, r.styleFinding(f))
	}
}

// Summary prints the aggregate line.
func (r *TextRenderer) Summary(summary domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "%d file(s) checked: %d passed, %d failed (%d error(s), %d warning(s))\n",
		summary.Files, summary.Passed, summary.Failed, summary.Errors, summary.Warnings)
}

// Stop is a no-op for the synchronous renderer.
func (r *TextRenderer) Stop() error {
	return nil
}

// Wait is a no-op for the synchronous renderer.
func (r *TextRenderer) Wait() error {
	return nil
}

func (r *TextRenderer) styleFinding(f domain.Finding) string {
	line := f.String()
	switch f.Severity {
	case domain.SeverityError:
		return r.out.String(line).Foreground(termenv.ANSIRed).String()
	case domain.SeverityWarning:
		return r.out.String(line).Foreground(termenv.ANSIYellow).String()
	default:
		return line
	}
}
