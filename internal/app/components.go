package app

import (
	"github.com/reqwell/reqcheck/internal/core/ports"
)

// Components bundles everything the command layer needs, resolved once
// through the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
