// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/reqwell/reqcheck/internal/adapters/cache"
	_ "github.com/reqwell/reqcheck/internal/adapters/config"
	_ "github.com/reqwell/reqcheck/internal/adapters/fs"
	_ "github.com/reqwell/reqcheck/internal/adapters/logger"
	_ "github.com/reqwell/reqcheck/internal/adapters/reqfile"
	_ "github.com/reqwell/reqcheck/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/reqwell/reqcheck/internal/app"
	_ "github.com/reqwell/reqcheck/internal/engine/linter"
)
