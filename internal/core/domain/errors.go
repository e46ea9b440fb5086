package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateRequirement is returned when a manifest already declares the same canonical name.
	ErrDuplicateRequirement = zerr.New("duplicate requirement")

	// ErrMalformedLine is returned when a line matches neither the specifier grammar nor a directive.
	ErrMalformedLine = zerr.New("malformed requirement line")

	// ErrInvalidVersion is returned when a version string does not parse.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidSpecifier is returned when a constraint uses an unknown operator or empty version.
	ErrInvalidSpecifier = zerr.New("invalid specifier")

	// ErrInvalidName is returned when a package name violates the name grammar.
	ErrInvalidName = zerr.New("invalid package name")

	// ErrManifestAlreadyAdded is returned when the same file is added to an include graph twice.
	ErrManifestAlreadyAdded = zerr.New("manifest already added")

	// ErrMissingInclude is returned when an include references a file absent from the graph.
	ErrMissingInclude = zerr.New("missing include")

	// ErrIncludeCycle is returned when requirement files include each other in a cycle.
	ErrIncludeCycle = zerr.New("include cycle detected")

	// ErrNoManifestsSpecified is returned when a command is invoked without any files.
	ErrNoManifestsSpecified = zerr.New("no manifest files specified")

	// ErrLintFindings signals that a lint run produced findings at failure severity.
	// Commands translate it into a non-zero exit code without re-logging.
	ErrLintFindings = zerr.New("lint findings")

	// ErrFormatDrift signals that fmt --check found files that are not canonically formatted.
	ErrFormatDrift = zerr.New("formatting differs")
)
