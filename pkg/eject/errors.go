package eject

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cfg, err := resolver.Resolve(meta, pkg)
//	if errors.Is(err, eject.ErrNoCompilationUnit) {
//	    // The package has no buildable unit to eject.
//	}
var (
	// ErrInvalidConfig indicates the tool configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMetadataFailed indicates the scarb metadata query did not produce
	// a usable metadata document.
	ErrMetadataFailed = errors.New("scarb metadata failed")

	// ErrNoCompilationUnit indicates no compilation unit suitable for
	// ejection exists for the selected package.
	ErrNoCompilationUnit = errors.New("no suitable compilation unit")

	// ErrNoMembers indicates the workspace has no member packages.
	ErrNoMembers = errors.New("workspace has no members")

	// ErrPackageNotFound indicates the requested package is not a member
	// of the workspace.
	ErrPackageNotFound = errors.New("package not found")

	// ErrAmbiguousPackage indicates the package selector matched more than
	// one workspace member.
	ErrAmbiguousPackage = errors.New("ambiguous package selection")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMetadataFailed):
		return ExitMetadataError
	case errors.Is(err, ErrNoCompilationUnit):
		return ExitNoUnitError
	case errors.Is(err, ErrNoMembers),
		errors.Is(err, ErrPackageNotFound),
		errors.Is(err, ErrAmbiguousPackage):
		return ExitSelectionError
	}

	// Cobra reports flag and argument misuse as plain errors; classify the
	// common patterns as usage errors.
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts") && strings.Contains(errStr, "arg(s)") ||
		strings.Contains(errStr, "required flag") {
		return ExitUsageError
	}

	return ExitGeneralError
}
