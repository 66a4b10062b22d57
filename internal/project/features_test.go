package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cairotools/scarb-eject/internal/scarb"
)

func TestExtractExperimentalFeatures_NilPackage(t *testing.T) {
	features := ExtractExperimentalFeatures(nil)
	assert.Equal(t, ExperimentalFeaturesConfig{}, features)
}

func TestExtractExperimentalFeatures(t *testing.T) {
	tests := []struct {
		name     string
		declared []string
		want     ExperimentalFeaturesConfig
	}{
		{"none declared", nil, ExperimentalFeaturesConfig{}},
		{
			"negative impls only",
			[]string{"negative_impls"},
			ExperimentalFeaturesConfig{NegativeImpls: true},
		},
		{
			"all recognized",
			[]string{"negative_impls", "associated_item_constraints", "coupons"},
			ExperimentalFeaturesConfig{NegativeImpls: true, AssociatedItemConstraints: true, Coupons: true},
		},
		{
			"unknown names silently ignored",
			[]string{"time_travel", "coupons", "quantum_storage"},
			ExperimentalFeaturesConfig{Coupons: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &scarb.PackageMetadata{Name: "p", ExperimentalFeatures: tt.declared}
			assert.Equal(t, tt.want, ExtractExperimentalFeatures(pkg))
		})
	}
}
