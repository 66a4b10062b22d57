package project

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ContractFixture(t *testing.T) {
	config := resolveContract(t, nil)

	rendered, err := Render(config)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(rendered), "\n"), "document must end with a newline")

	var decoded struct {
		CrateRoots map[string]string `toml:"crate_roots"`
		Config     struct {
			Global   map[string]interface{}            `toml:"global"`
			Override map[string]map[string]interface{} `toml:"override"`
		} `toml:"config"`
	}
	require.NoError(t, toml.Unmarshal(rendered, &decoded))

	assert.Equal(t, map[string]string{
		"app": "/ws/app/src",
		"lib": "/ws/lib/src",
	}, decoded.CrateRoots)

	global := decoded.Config.Global
	assert.Equal(t, "2024_07", global["edition"])
	assert.Equal(t, "1.2.3", global["version"])
	assert.Equal(t, []interface{}{`target="starknet-contract"`}, global["cfg_set"])
	assert.Equal(t, map[string]interface{}{
		"negative_impls":              true,
		"associated_item_constraints": false,
		"coupons":                     true,
	}, global["experimental_features"])

	deps, ok := global["dependencies"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, deps, 2)
	appDep, ok := deps["app"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "app 1.2.3", appDep["discriminator"])

	require.Contains(t, decoded.Config.Override, "app")
	require.Contains(t, decoded.Config.Override, "lib")
	assert.NotContains(t, decoded.Config.Override, "core")

	libOverride := decoded.Config.Override["lib"]
	assert.Equal(t, "2023_01", libOverride["edition"])
	// The component's package was not found: no version. It declares no
	// cfg list: no cfg_set key at all.
	assert.NotContains(t, libOverride, "version")
	assert.NotContains(t, libOverride, "cfg_set")

	appOverride := decoded.Config.Override["app"]
	assert.Equal(t, "1.2.3", appOverride["version"])
	assert.Equal(t, []interface{}{`target="starknet-contract"`}, appOverride["cfg_set"])
}

func TestRender_EmptyCfgSetStaysPresent(t *testing.T) {
	config := resolveContract(t, nil)
	// An empty cfg set is distinct from an absent one.
	config.CratesConfig.Global.CfgSet = NewCfgSet()

	rendered, err := Render(config)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, toml.Unmarshal(rendered, &decoded))
	global := decoded["config"].(map[string]interface{})["global"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, global["cfg_set"])
}

func TestRender_Deterministic(t *testing.T) {
	config := resolveContract(t, nil)

	first, err := Render(config)
	require.NoError(t, err)
	second, err := Render(config)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
