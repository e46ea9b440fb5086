package ports

import "github.com/reqwell/reqcheck/internal/core/domain"

// IncludeResolver builds the include graph reachable from a root manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type IncludeResolver interface {
	// Resolve parses the root file and every file reachable through -r and
	// -c directives, returning the validated include graph together with
	// the parse problems found along the way.
	Resolve(root string) (*domain.Resolution, error)
}
