package eject

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Project configuration written successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid tool configuration
	ExitMetadataError   = 11 // Scarb metadata query failed
	ExitNoUnitError     = 12 // No compilation unit suitable for ejection
	ExitSelectionError  = 13 // Package selector could not resolve one package
)

const (
	// CorelibCrateName is the reserved name of the implicit standard
	// library crate. The corelib never appears in crate roots, dependency
	// maps, or the per-crate override map: the consuming compiler provides
	// it on its own.
	CorelibCrateName = "core"

	// ProjectFileName is the default output file name, written next to
	// Scarb.toml in the workspace root.
	ProjectFileName = "cairo_project.toml"

	// StdoutPath is the sentinel output path that redirects the rendered
	// project configuration to standard output.
	StdoutPath = "-"

	// MetadataFormatVersion is the only Scarb metadata format version this
	// tool understands.
	MetadataFormatVersion = 1
)
