package ports

import "github.com/reqwell/reqcheck/internal/core/domain"

// ResultStore persists lint results between runs so unchanged files can be
// skipped.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the record for a manifest path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.LintRecord, error)

	// Put stores the record.
	Put(record domain.LintRecord) error
}
