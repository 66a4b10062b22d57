package project

import "github.com/Masterminds/semver/v3"

// DependencySettings are the per-dependency compilation settings carried by
// a crate's settings record.
type DependencySettings struct {
	// Discriminator distinguishes multiple builds of the same package.
	// Absent for the main crate and for components without one.
	Discriminator *string
}

// CrateSettings is one crate's compilation settings record. The same type
// serves both levels of the two-level model: the global default and the
// per-crate overrides. Neither is derived from the other; the consuming
// compiler falls back to the global record on an override-map miss.
type CrateSettings struct {
	Edition Edition

	// Version is present on the global record always, and on override
	// records only when the component's owning package was found in the
	// snapshot.
	Version *semver.Version

	// CfgSet is nil when no conditional-compilation information survived
	// for this crate.
	CfgSet *CfgSet

	// Dependencies maps crate identifiers of this crate's dependencies to
	// their settings, in component iteration order.
	Dependencies *OrderedMap[DependencySettings]

	ExperimentalFeatures ExperimentalFeaturesConfig
}

// AllCratesConfig is the two-level settings model: a global default plus
// per-crate overrides keyed by crate identifier.
type AllCratesConfig struct {
	Global CrateSettings

	// OverrideMap has exactly one entry per non-corelib component of the
	// ejected compilation unit; its key set equals the crate-roots key set.
	OverrideMap *OrderedMap[CrateSettings]
}

// ProjectConfig is the resolved, compiler-consumable project configuration.
type ProjectConfig struct {
	// CrateRoots maps crate identifiers to source-root directories, in
	// component iteration order.
	CrateRoots *OrderedMap[string]

	CratesConfig AllCratesConfig
}
