package ports

import "github.com/reqwell/reqcheck/internal/core/domain"

// RuleConfigLoader loads the lint rule configuration for a working
// directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type RuleConfigLoader interface {
	// Load reads the configuration from the given working directory,
	// falling back to defaults when no file exists.
	Load(cwd string) (domain.RuleConfig, error)
}
