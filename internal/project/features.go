package project

import "github.com/cairotools/scarb-eject/internal/scarb"

// ExperimentalFeaturesConfig is the closed set of compiler feature gates a
// crate can opt into. Each flag defaults to false.
type ExperimentalFeaturesConfig struct {
	// NegativeImpls permits otherwise-disallowed negative trait
	// implementations.
	NegativeImpls bool

	// AssociatedItemConstraints permits constraints on associated items.
	AssociatedItemConstraints bool

	// Coupons enables coupon cost-accounting features.
	Coupons bool
}

// Names of the recognized experimental features as they appear in package
// metadata. Unrecognized names are ignored: packages may opt into features
// newer compilers know and this tool does not.
const (
	featureNegativeImpls             = "negative_impls"
	featureAssociatedItemConstraints = "associated_item_constraints"
	featureCoupons                   = "coupons"
)

// ExtractExperimentalFeatures tests the recognized feature names against a
// package's declared opt-ins. A nil package yields all-false.
func ExtractExperimentalFeatures(pkg *scarb.PackageMetadata) ExperimentalFeaturesConfig {
	contains := func(feature string) bool {
		if pkg == nil {
			return false
		}
		for _, f := range pkg.ExperimentalFeatures {
			if f == feature {
				return true
			}
		}
		return false
	}

	return ExperimentalFeaturesConfig{
		NegativeImpls:             contains(featureNegativeImpls),
		AssociatedItemConstraints: contains(featureAssociatedItemConstraints),
		Coupons:                   contains(featureCoupons),
	}
}
