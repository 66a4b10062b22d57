package scarb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataCommand_Args(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := &MetadataCommand{}
		assert.Equal(t, []string{"--json", "metadata", "--format-version", "1"}, cmd.Args())
	})

	t.Run("with profile and manifest path", func(t *testing.T) {
		cmd := &MetadataCommand{Profile: "release", ManifestPath: "/ws/Scarb.toml"}
		assert.Equal(t, []string{
			"--json", "--profile", "release",
			"metadata", "--format-version", "1",
			"--manifest-path", "/ws/Scarb.toml",
		}, cmd.Args())
	})
}

func TestMetadataCommand_Executable(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cmd := &MetadataCommand{ScarbPath: "/opt/scarb/bin/scarb"}
		assert.Equal(t, "/opt/scarb/bin/scarb", cmd.Executable())
	})

	t.Run("SCARB env var", func(t *testing.T) {
		t.Setenv("SCARB", "/usr/local/bin/scarb-nightly")
		cmd := &MetadataCommand{}
		assert.Equal(t, "/usr/local/bin/scarb-nightly", cmd.Executable())
	})

	t.Run("plain scarb fallback", func(t *testing.T) {
		t.Setenv("SCARB", "")
		cmd := &MetadataCommand{}
		assert.Equal(t, "scarb", cmd.Executable())
	})
}

const sampleMetadataLine = `{"version":1,` +
	`"workspace":{"root":"/ws","members":["hello 0.1.0 (path+file:///ws)"]},` +
	`"packages":[{"id":"hello 0.1.0 (path+file:///ws)","name":"hello","version":"0.1.0",` +
	`"edition":"2024_07","experimental_features":["negative_impls"]}],` +
	`"compilation_units":[{"package":"hello 0.1.0 (path+file:///ws)",` +
	`"target":{"kind":"lib","name":"hello","source_path":"/ws/src/lib.cairo"},` +
	`"cfg":["target=\"lib\""],` +
	`"components":[` +
	`{"name":"core","package":"core 2.8.0 (std)","source_path":"/corelib/src/lib.cairo"},` +
	`{"name":"hello","package":"hello 0.1.0 (path+file:///ws)","source_path":"/ws/src/lib.cairo",` +
	`"id":"hello_id","discriminator":"hello 0.1.0","cfg":["target=\"lib\""],` +
	`"dependencies":[{"id":"hello_id"}]}]}]}`

func TestDecodeMetadataOutput(t *testing.T) {
	// Status lines before and after the document must be skipped.
	output := strings.Join([]string{
		`{"status":"compiling","message":"hello v0.1.0"}`,
		"warn: something unrelated",
		sampleMetadataLine,
		`{"status":"finished"}`,
	}, "\n")

	meta, err := decodeMetadataOutput(strings.NewReader(output))
	require.NoError(t, err)

	assert.Equal(t, "/ws", meta.Workspace.Root)
	require.Len(t, meta.Packages, 1)
	pkg := meta.Packages[0]
	assert.Equal(t, "hello", pkg.Name)
	assert.Equal(t, "0.1.0", pkg.Version.String())
	require.NotNil(t, pkg.Edition)
	assert.Equal(t, "2024_07", *pkg.Edition)
	assert.Equal(t, []string{"negative_impls"}, pkg.ExperimentalFeatures)

	require.Len(t, meta.CompilationUnits, 1)
	unit := meta.CompilationUnits[0]
	assert.Equal(t, "lib", unit.Target.Kind)
	assert.Equal(t, []Cfg{KeyValueCfg("target", "lib")}, unit.Cfg)

	require.Len(t, unit.Components, 2)
	core, hello := unit.Components[0], unit.Components[1]
	assert.Equal(t, "core", core.Name)
	assert.Nil(t, core.Cfg)
	assert.Nil(t, core.Dependencies)
	assert.Equal(t, "/corelib/src", core.SourceRoot())

	assert.Equal(t, "hello", hello.Name)
	require.NotNil(t, hello.ID)
	assert.Equal(t, "hello_id", *hello.ID)
	require.NotNil(t, hello.Discriminator)
	assert.Equal(t, "hello 0.1.0", *hello.Discriminator)
	require.NotNil(t, hello.Cfg)
	assert.Equal(t, []Cfg{KeyValueCfg("target", "lib")}, *hello.Cfg)
}

func TestDecodeMetadataOutput_NoDocument(t *testing.T) {
	_, err := decodeMetadataOutput(strings.NewReader("warn: nothing here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metadata document")
}

func TestDecodeMetadataOutput_UnsupportedVersion(t *testing.T) {
	_, err := decodeMetadataOutput(strings.NewReader(`{"version":9,"workspace":{"root":"/ws"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metadata format version 9")
}
