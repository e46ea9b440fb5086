package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// namePattern is the package name grammar used by package indexes:
// leading and trailing characters must be alphanumeric, separators
// (-, _, .) are allowed in between.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

var separatorRuns = regexp.MustCompile(`[-_.]+`)

// CanonicalName normalizes a package name the way indexes do: lowercase,
// with every run of -, _ and . collapsed to a single dash. "Pillow_SIMD"
// and "pillow.simd" refer to the same package.
func CanonicalName(name string) string {
	return strings.ToLower(separatorRuns.ReplaceAllString(name, "-"))
}

// ValidateName checks a raw package name against the name grammar.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return zerr.With(ErrInvalidName, "name", name)
	}
	return nil
}
