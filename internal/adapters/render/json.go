package render

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*JSONRenderer)(nil)

// JSONRenderer collects results and emits a single JSON report once the
// pass completes, for toolchain consumption.
type JSONRenderer struct {
	stdout io.Writer

	mu       sync.Mutex
	report   jsonReport
	flushed  bool
	flushErr error
}

type jsonReport struct {
	Files   []domain.FileResult `json:"files"`
	Summary domain.Summary      `json:"summary"`
}

// NewJSONRenderer creates a JSONRenderer. A nil writer defaults to stdout.
func NewJSONRenderer(stdout io.Writer) *JSONRenderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &JSONRenderer{stdout: stdout}
}

// Start is a no-op for the JSON renderer.
func (r *JSONRenderer) Start(_ context.Context) error {
	return nil
}

// FileStarted is a no-op; the report is emitted at the end of the pass.
func (r *JSONRenderer) FileStarted(_ string) {}

// FileResult records the outcome for inclusion in the report.
func (r *JSONRenderer) FileResult(result domain.FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if result.Findings == nil {
		result.Findings = []domain.Finding{}
	}
	r.report.Files = append(r.report.Files, result)
}

// Summary records the aggregate and flushes the report.
func (r *JSONRenderer) Summary(summary domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.report.Summary = summary
	r.flushLocked()
}

// Stop flushes the report if no summary was delivered, so aborted runs
// still produce valid JSON.
func (r *JSONRenderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	return r.flushErr
}

// Wait is a no-op for the JSON renderer.
func (r *JSONRenderer) Wait() error {
	return nil
}

func (r *JSONRenderer) flushLocked() {
	if r.flushed {
		return
	}
	r.flushed = true

	if r.report.Files == nil {
		r.report.Files = []domain.FileResult{}
	}

	enc := json.NewEncoder(r.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.report); err != nil {
		r.flushErr = zerr.Wrap(err, "failed to encode report")
	}
}
