// Package ports defines the core interfaces for the application.
package ports

import "github.com/reqwell/reqcheck/internal/core/domain"

// ManifestLoader parses one requirements file into the domain model.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ManifestLoader interface {
	// Load parses the file at path. Line-level problems the parser can
	// recover from are reported as findings on the result; the error is
	// reserved for unreadable files.
	Load(path string) (*domain.ParseResult, error)
}
