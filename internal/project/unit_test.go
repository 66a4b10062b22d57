package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairotools/scarb-eject/internal/scarb"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

func unitFor(pkg scarb.PackageID, kind string) scarb.CompilationUnitMetadata {
	return scarb.CompilationUnitMetadata{
		Package: pkg,
		Target:  scarb.TargetMetadata{Kind: kind, Name: kind},
	}
}

func TestSelectCompilationUnit_PrefersContractOverLib(t *testing.T) {
	const pkg = scarb.PackageID("hello 0.1.0 (path)")

	// Deterministic regardless of input order.
	orders := [][]string{
		{"lib", "starknet-contract"},
		{"starknet-contract", "lib"},
	}
	for _, kinds := range orders {
		meta := &scarb.Metadata{}
		for _, kind := range kinds {
			meta.CompilationUnits = append(meta.CompilationUnits, unitFor(pkg, kind))
		}
		unit, err := SelectCompilationUnit(meta, pkg)
		require.NoError(t, err)
		assert.Equal(t, "starknet-contract", unit.Target.Kind)
	}
}

func TestSelectCompilationUnit_PrefersContractOverCustom(t *testing.T) {
	const pkg = scarb.PackageID("hello 0.1.0 (path)")
	meta := &scarb.Metadata{CompilationUnits: []scarb.CompilationUnitMetadata{
		unitFor(pkg, "custom"),
		unitFor(pkg, "starknet-contract"),
	}}

	unit, err := SelectCompilationUnit(meta, pkg)
	require.NoError(t, err)
	assert.Equal(t, "starknet-contract", unit.Target.Kind)
}

func TestSelectCompilationUnit_PrefersLibOverCustom(t *testing.T) {
	const pkg = scarb.PackageID("hello 0.1.0 (path)")
	meta := &scarb.Metadata{CompilationUnits: []scarb.CompilationUnitMetadata{
		unitFor(pkg, "test"),
		unitFor(pkg, "lib"),
	}}

	unit, err := SelectCompilationUnit(meta, pkg)
	require.NoError(t, err)
	assert.Equal(t, "lib", unit.Target.Kind)
}

func TestSelectCompilationUnit_CustomKindsTieBreakLexicographically(t *testing.T) {
	const pkg = scarb.PackageID("hello 0.1.0 (path)")
	meta := &scarb.Metadata{CompilationUnits: []scarb.CompilationUnitMetadata{
		unitFor(pkg, "zeta"),
		unitFor(pkg, "alpha"),
		unitFor(pkg, "omega"),
	}}

	unit, err := SelectCompilationUnit(meta, pkg)
	require.NoError(t, err)
	assert.Equal(t, "alpha", unit.Target.Kind)
}

func TestSelectCompilationUnit_IgnoresOtherPackages(t *testing.T) {
	const pkg = scarb.PackageID("hello 0.1.0 (path)")
	meta := &scarb.Metadata{CompilationUnits: []scarb.CompilationUnitMetadata{
		unitFor("other 1.0.0 (path)", "starknet-contract"),
		unitFor(pkg, "lib"),
	}}

	unit, err := SelectCompilationUnit(meta, pkg)
	require.NoError(t, err)
	assert.Equal(t, "lib", unit.Target.Kind)
}

func TestSelectCompilationUnit_NotFound(t *testing.T) {
	meta := &scarb.Metadata{CompilationUnits: []scarb.CompilationUnitMetadata{
		unitFor("other 1.0.0 (path)", "lib"),
	}}

	_, err := SelectCompilationUnit(meta, "hello 0.1.0 (path)")
	require.Error(t, err)
	assert.ErrorIs(t, err, eject.ErrNoCompilationUnit)
	assert.Contains(t, err.Error(), "hello 0.1.0 (path)")
}
