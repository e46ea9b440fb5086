package ports

import (
	"context"

	"github.com/reqwell/reqcheck/internal/core/domain"
)

// Renderer presents lint progress and results. Implementations range from
// plain line output to the interactive watch view.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start begins rendering. For interactive renderers this launches the
	// UI loop; for linear ones it is a no-op.
	Start(ctx context.Context) error

	// FileStarted reports that linting began for a manifest.
	FileStarted(path string)

	// FileResult reports the outcome for one manifest.
	FileResult(result domain.FileResult)

	// Summary reports the aggregate once a pass completes.
	Summary(summary domain.Summary)

	// Stop terminates rendering and flushes pending output.
	Stop() error

	// Wait blocks until the renderer has terminated.
	Wait() error
}
