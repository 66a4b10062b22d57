package project

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// Serialization shapes for cairo_project.toml. Field order matters for
// valid TOML: plain values precede sub-tables within every table.
type tomlProjectConfig struct {
	CrateRoots map[string]string   `toml:"crate_roots"`
	Config     tomlAllCratesConfig `toml:"config"`
}

type tomlAllCratesConfig struct {
	Global   tomlCrateSettings            `toml:"global"`
	Override map[string]tomlCrateSettings `toml:"override"`
}

type tomlCrateSettings struct {
	Edition              string                            `toml:"edition"`
	Version              string                            `toml:"version,omitempty"`
	CfgSet               *[]string                         `toml:"cfg_set,omitempty"`
	Dependencies         map[string]tomlDependencySettings `toml:"dependencies"`
	ExperimentalFeatures tomlExperimentalFeatures          `toml:"experimental_features"`
}

type tomlDependencySettings struct {
	Discriminator *string `toml:"discriminator,omitempty"`
}

type tomlExperimentalFeatures struct {
	NegativeImpls             bool `toml:"negative_impls"`
	AssociatedItemConstraints bool `toml:"associated_item_constraints"`
	Coupons                   bool `toml:"coupons"`
}

// Render serializes the configuration as a cairo_project.toml document,
// ending with a newline. Table keys are emitted in sorted order, which
// together with the deterministic resolution makes the output byte-stable
// across runs.
func Render(config *ProjectConfig) ([]byte, error) {
	doc := tomlProjectConfig{
		CrateRoots: make(map[string]string, config.CrateRoots.Len()),
		Config: tomlAllCratesConfig{
			Global:   crateSettingsDoc(config.CratesConfig.Global),
			Override: make(map[string]tomlCrateSettings, config.CratesConfig.OverrideMap.Len()),
		},
	}
	config.CrateRoots.Each(func(name, root string) {
		doc.CrateRoots[name] = root
	})
	config.CratesConfig.OverrideMap.Each(func(name string, settings CrateSettings) {
		doc.Config.Override[name] = crateSettingsDoc(settings)
	})

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func crateSettingsDoc(settings CrateSettings) tomlCrateSettings {
	doc := tomlCrateSettings{
		Edition:      string(settings.Edition),
		Dependencies: make(map[string]tomlDependencySettings, settings.Dependencies.Len()),
		ExperimentalFeatures: tomlExperimentalFeatures{
			NegativeImpls:             settings.ExperimentalFeatures.NegativeImpls,
			AssociatedItemConstraints: settings.ExperimentalFeatures.AssociatedItemConstraints,
			Coupons:                   settings.ExperimentalFeatures.Coupons,
		},
	}
	if settings.Version != nil {
		doc.Version = settings.Version.String()
	}
	if settings.CfgSet != nil {
		entries := settings.CfgSet.Entries()
		if entries == nil {
			entries = []string{}
		}
		doc.CfgSet = &entries
	}
	settings.Dependencies.Each(func(name string, dep DependencySettings) {
		doc.Dependencies[name] = tomlDependencySettings{Discriminator: dep.Discriminator}
	})
	return doc
}
