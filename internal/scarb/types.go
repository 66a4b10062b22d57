package scarb

import (
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// PackageID is Scarb's opaque package identity. Compilation units and
// components reference packages by this value, never by name.
type PackageID string

// Metadata is the top-level Scarb metadata document, trimmed to the fields
// the ejection needs. Produced once per invocation and immutable afterwards.
type Metadata struct {
	// Version is the metadata format version pin. See MetadataFormatVersion.
	Version int `json:"version"`

	Workspace WorkspaceMetadata `json:"workspace"`

	// Packages lists every package in the resolve graph, workspace members
	// and upstream dependencies alike.
	Packages []PackageMetadata `json:"packages"`

	CompilationUnits []CompilationUnitMetadata `json:"compilation_units"`
}

// WorkspaceMetadata describes the workspace itself.
type WorkspaceMetadata struct {
	// Root is the absolute path to the directory holding Scarb.toml.
	Root string `json:"root"`

	// Members are the package ids of workspace member packages.
	Members []PackageID `json:"members"`
}

// PackageMetadata describes a single package.
type PackageMetadata struct {
	ID      PackageID       `json:"id"`
	Name    string          `json:"name"`
	Version *semver.Version `json:"version"`

	// Edition is the package's declared Cairo edition, if any. Kept as the
	// raw string: interpretation (and graceful degradation on unknown
	// values) happens downstream.
	Edition *string `json:"edition,omitempty"`

	// ExperimentalFeatures are the feature names the package opted into.
	ExperimentalFeatures []string `json:"experimental_features,omitempty"`
}

// CompilationUnitMetadata describes a single buildable target of a package
// together with all components compiled into it.
type CompilationUnitMetadata struct {
	// Package is the id of the package this unit builds.
	Package PackageID `json:"package"`

	Target TargetMetadata `json:"target"`

	// Components are the crates compiled into this unit, in Scarb's
	// iteration order. The order is meaningful and is preserved end to end.
	Components []CompilationUnitComponentMetadata `json:"components"`

	// Cfg is the unit-wide aggregate conditional-compilation list.
	Cfg []Cfg `json:"cfg"`
}

// TargetMetadata describes the target of a compilation unit.
type TargetMetadata struct {
	// Kind is the target kind name, e.g. "lib", "starknet-contract" or a
	// custom kind. Unit selection ranks on this value.
	Kind string `json:"kind"`

	Name       string `json:"name"`
	SourcePath string `json:"source_path"`
}

// CompilationUnitComponentMetadata describes one crate within a compilation
// unit.
type CompilationUnitComponentMetadata struct {
	// Name is the crate identifier under which the component is exposed to
	// the compiler.
	Name string `json:"name"`

	// Package is the id of the package this component comes from. The
	// package may be absent from Metadata.Packages; consumers must treat
	// the join as optional.
	Package PackageID `json:"package"`

	// SourcePath points at the component's main source file.
	SourcePath string `json:"source_path"`

	// ID is the component's own identity, used only by sibling components'
	// dependency references. Older Scarb versions omit it.
	ID *string `json:"id,omitempty"`

	// Discriminator distinguishes multiple builds of the same package
	// within one workspace. Absent for the main component and the corelib.
	Discriminator *string `json:"discriminator,omitempty"`

	// Cfg is the component's own conditional-compilation list. A nil slice
	// means the component declares none, which is distinct from an empty
	// list.
	Cfg *[]Cfg `json:"cfg,omitempty"`

	// Dependencies are references to sibling components of the same unit.
	Dependencies *[]CompilationUnitComponentDependencyMetadata `json:"dependencies,omitempty"`
}

// CompilationUnitComponentDependencyMetadata is a reference from one
// component to another within the same compilation unit.
type CompilationUnitComponentDependencyMetadata struct {
	// ID matches CompilationUnitComponentMetadata.ID of the dependency.
	ID string `json:"id"`
}

// SourceRoot returns the directory containing the component's main source
// file. This is the crate root handed to the compiler.
func (c *CompilationUnitComponentMetadata) SourceRoot() string {
	return filepath.Dir(c.SourcePath)
}
