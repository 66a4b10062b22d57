package project

import (
	"github.com/cairotools/scarb-eject/internal/scarb"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

// CollectCrateRoots maps each of the unit's components to its source root,
// keyed by crate identifier and preserving the unit's component iteration
// order. The corelib component is excluded: the compiler locates the
// standard library on its own.
//
// No error path. An empty component list yields an empty mapping.
func CollectCrateRoots(unit *scarb.CompilationUnitMetadata) *OrderedMap[string] {
	roots := NewOrderedMap[string]()
	for i := range unit.Components {
		component := &unit.Components[i]
		if component.Name == eject.CorelibCrateName {
			continue
		}
		roots.Set(component.Name, component.SourceRoot())
	}
	return roots
}
