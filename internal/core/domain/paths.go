package domain

import (
	"os"
	"path/filepath"
)

// DefaultResultStoreDir returns the directory holding the lint result
// cache, honoring XDG_CACHE_HOME.
func DefaultResultStoreDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "reqcheck", "results")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".reqcheck", "results")
	}
	return filepath.Join(home, ".cache", "reqcheck", "results")
}

// Store directory and file permissions.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)

// DefaultConfigFilename is the per-project rule configuration file.
const DefaultConfigFilename = ".reqcheck.yaml"
