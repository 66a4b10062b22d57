package project

import (
	"github.com/cairotools/scarb-eject/internal/scarb"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

// Resolver derives a ProjectConfig from a metadata snapshot. It holds no
// state between calls: Resolve is a pure function of the snapshot and the
// selected package, plus the log side channel for degradation warnings.
type Resolver struct {
	logger eject.Logger
	noDeps bool
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithoutDependencies short-circuits the global dependency mapping to
// empty. Per-crate override dependency maps are unaffected. Off by default.
func WithoutDependencies() ResolverOption {
	return func(r *Resolver) {
		r.noDeps = true
	}
}

// NewResolver creates a Resolver. A nil logger discards warnings.
func NewResolver(logger eject.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes the project configuration for mainPkg.
//
// The only failure is unit selection: everything downstream degrades
// instead of failing. The snapshot is not mutated; resolving the same
// snapshot twice yields identical configurations.
func (r *Resolver) Resolve(meta *scarb.Metadata, mainPkg *scarb.PackageMetadata) (*ProjectConfig, error) {
	unit, err := SelectCompilationUnit(meta, mainPkg.ID)
	if err != nil {
		return nil, err
	}

	// One identifier index per pass; the per-component joins stay linear.
	packages := indexPackages(meta)

	return &ProjectConfig{
		CrateRoots: CollectCrateRoots(unit),
		CratesConfig: AllCratesConfig{
			Global:      r.GlobalSettings(mainPkg, unit),
			OverrideMap: r.OverrideSettings(unit, packages),
		},
	}, nil
}

func indexPackages(meta *scarb.Metadata) map[scarb.PackageID]*scarb.PackageMetadata {
	byID := make(map[scarb.PackageID]*scarb.PackageMetadata, len(meta.Packages))
	for i := range meta.Packages {
		byID[meta.Packages[i].ID] = &meta.Packages[i]
	}
	return byID
}

func (r *Resolver) warn(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warn(format, args...)
	}
}
