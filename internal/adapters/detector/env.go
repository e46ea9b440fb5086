// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeText is the plain line renderer.
	ModeText OutputMode = iota
	// ModeJSON is the machine-readable report renderer.
	ModeJSON
)

// IsInteractive reports whether stdout is a terminal outside CI, which
// gates the live watch view.
func IsInteractive() bool {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	return isTTY && !isCI
}

// ResolveMode maps the user's --format flag to an output mode. JSON is
// only ever chosen explicitly; anything else falls back to text.
func ResolveMode(userFlag string) OutputMode {
	switch userFlag {
	case "json":
		return ModeJSON
	default:
		return ModeText
	}
}
