package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairotools/scarb-eject/internal/scarb"
)

func TestCollectCrateRoots(t *testing.T) {
	unit := &scarb.CompilationUnitMetadata{Components: []scarb.CompilationUnitComponentMetadata{
		{Name: "core", SourcePath: "/corelib/src/lib.cairo"},
		{Name: "zeta", SourcePath: "/ws/zeta/src/lib.cairo"},
		{Name: "alpha", SourcePath: "/ws/alpha/src/lib.cairo"},
	}}

	roots := CollectCrateRoots(unit)

	// Corelib excluded, component iteration order preserved.
	assert.Equal(t, []string{"zeta", "alpha"}, roots.Keys())
	root, ok := roots.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, "/ws/zeta/src", root)
}

func TestCollectCrateRoots_EmptyUnit(t *testing.T) {
	roots := CollectCrateRoots(&scarb.CompilationUnitMetadata{})
	assert.Equal(t, 0, roots.Len())
}
