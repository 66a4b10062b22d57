package project

import (
	"fmt"

	"github.com/cairotools/scarb-eject/internal/scarb"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

// Target kinds ranked by ejection preference. Contract-build units carry
// the cfg and component set a deployed contract is actually built with, so
// they beat plain library units; custom targets come last.
const (
	rankContract = 0
	rankLib      = 1
	rankOther    = 2
)

func targetKindRank(kind string) int {
	switch kind {
	case "starknet-contract":
		return rankContract
	case "lib":
		return rankLib
	default:
		return rankOther
	}
}

// SelectCompilationUnit picks the single compilation unit to eject for the
// given package: the minimum of (kind rank, kind name) over all units owned
// by the package. The lexicographic tie-break within a rank keeps the
// choice stable regardless of the snapshot's unit order.
//
// Returns an error wrapping eject.ErrNoCompilationUnit, naming the package,
// when the package owns no unit.
func SelectCompilationUnit(meta *scarb.Metadata, pkg scarb.PackageID) (*scarb.CompilationUnitMetadata, error) {
	var best *scarb.CompilationUnitMetadata
	for i := range meta.CompilationUnits {
		unit := &meta.CompilationUnits[i]
		if unit.Package != pkg {
			continue
		}
		if best == nil || unitLess(unit, best) {
			best = unit
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: could not find a compilation unit suitable for ejection for package %s",
			eject.ErrNoCompilationUnit, pkg)
	}
	return best, nil
}

func unitLess(a, b *scarb.CompilationUnitMetadata) bool {
	ra, rb := targetKindRank(a.Target.Kind), targetKindRank(b.Target.Kind)
	if ra != rb {
		return ra < rb
	}
	return a.Target.Kind < b.Target.Kind
}
