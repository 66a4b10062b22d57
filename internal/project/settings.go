package project

import (
	"github.com/cairotools/scarb-eject/internal/scarb"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

// GlobalSettings derives the global default settings record from the
// requested package and its compilation unit.
//
// Edition, version and experimental features come from the package; the cfg
// set comes from the unit's aggregate list; the dependency mapping
// enumerates every non-corelib component of the unit. Version is always
// present on this record.
func (r *Resolver) GlobalSettings(pkg *scarb.PackageMetadata, unit *scarb.CompilationUnitMetadata) CrateSettings {
	dependencies := NewOrderedMap[DependencySettings]()
	if !r.noDeps {
		for i := range unit.Components {
			component := &unit.Components[i]
			if component.Name == eject.CorelibCrateName {
				continue
			}
			dependencies.Set(component.Name, DependencySettings{
				Discriminator: component.Discriminator,
			})
		}
	}

	return CrateSettings{
		Edition:              r.packageEdition(pkg, pkg.Name),
		Version:              pkg.Version,
		CfgSet:               r.convertCfg(unit.Cfg, pkg.Name),
		Dependencies:         dependencies,
		ExperimentalFeatures: ExtractExperimentalFeatures(pkg),
	}
}

// OverrideSettings derives one settings record per non-corelib component of
// the unit, keyed by crate identifier in component iteration order.
//
// Each component's owning package is joined by id against the snapshot's
// package index; a component whose package is absent gets the default
// edition, no version and all-false features. The component's own cfg list
// (or none) becomes its cfg set. Dependency references resolve by component
// id within the same unit; references that resolve to nothing or to the
// corelib are dropped silently.
func (r *Resolver) OverrideSettings(
	unit *scarb.CompilationUnitMetadata,
	packages map[scarb.PackageID]*scarb.PackageMetadata,
) *OrderedMap[CrateSettings] {
	componentsByID := make(map[string]*scarb.CompilationUnitComponentMetadata)
	for i := range unit.Components {
		if id := unit.Components[i].ID; id != nil {
			componentsByID[*id] = &unit.Components[i]
		}
	}

	overrides := NewOrderedMap[CrateSettings]()
	for i := range unit.Components {
		component := &unit.Components[i]
		if component.Name == eject.CorelibCrateName {
			continue
		}
		overrides.Set(component.Name, r.componentSettings(component, packages, componentsByID))
	}
	return overrides
}

func (r *Resolver) componentSettings(
	component *scarb.CompilationUnitComponentMetadata,
	packages map[scarb.PackageID]*scarb.PackageMetadata,
	componentsByID map[string]*scarb.CompilationUnitComponentMetadata,
) CrateSettings {
	pkg := packages[component.Package]

	settings := CrateSettings{
		Edition:              r.packageEdition(pkg, component.Name),
		Dependencies:         r.componentDependencies(component, componentsByID),
		ExperimentalFeatures: ExtractExperimentalFeatures(pkg),
	}
	if pkg != nil {
		settings.Version = pkg.Version
	}
	if component.Cfg != nil {
		settings.CfgSet = r.convertCfg(*component.Cfg, component.Name)
	}
	return settings
}

func (r *Resolver) componentDependencies(
	component *scarb.CompilationUnitComponentMetadata,
	componentsByID map[string]*scarb.CompilationUnitComponentMetadata,
) *OrderedMap[DependencySettings] {
	dependencies := NewOrderedMap[DependencySettings]()
	if component.Dependencies == nil {
		return dependencies
	}
	for _, ref := range *component.Dependencies {
		dependency, ok := componentsByID[ref.ID]
		if !ok || dependency.Name == eject.CorelibCrateName {
			// Expected, benign mismatches: the corelib is implicit, and
			// Scarb versions differ in which edges they report.
			continue
		}
		dependencies.Set(dependency.Name, DependencySettings{
			Discriminator: dependency.Discriminator,
		})
	}
	return dependencies
}

// packageEdition interprets pkg's declared edition. A missing package or
// missing declaration silently means the default edition; a present but
// unrecognized declaration is warned about and also means the default.
func (r *Resolver) packageEdition(pkg *scarb.PackageMetadata, crateName string) Edition {
	if pkg == nil || pkg.Edition == nil {
		return DefaultEdition
	}
	edition, err := ParseEdition(*pkg.Edition)
	if err != nil {
		r.warn("failed to parse edition of package %s: %v", crateName, err)
	}
	return edition
}

// convertCfg runs the generic-to-native cfg round trip, degrading to no cfg
// set with a warning when the shapes disagree.
func (r *Resolver) convertCfg(entries []scarb.Cfg, crateName string) *CfgSet {
	set, err := ConvertCfg(entries)
	if err != nil {
		r.warn("scarb metadata cfg did not convert identically to cairo one for crate %s: %v", crateName, err)
		return nil
	}
	return set
}
