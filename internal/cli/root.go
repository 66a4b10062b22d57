package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scarb-eject",
	Short: "Generate cairo_project.toml from a Scarb workspace",
	Long: `scarb-eject translates Scarb's view of a workspace into a plain
cairo_project.toml the Cairo compiler consumes directly: crate roots for
every component of the ejected compilation unit, plus per-crate settings
(edition, version, cfg set, dependencies, experimental features).

The tool queries Scarb for metadata, picks the compilation unit best suited
for ejection (starknet-contract over lib over anything else) and resolves
the requested package's component graph. It never compiles anything and
never checks that source roots exist on disk.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid tool configuration
  11 - scarb metadata query failed
  12 - No compilation unit suitable for ejection
  13 - Package selection failed (no members, not found, or ambiguous)

Examples:
  # Eject the sole workspace member, writing cairo_project.toml next to Scarb.toml
  scarb-eject

  # Pick one member of a multi-package workspace
  scarb-eject -p my_contract

  # Write to stdout instead of a file
  scarb-eject -o -

  # Skip the global dependency mapping
  scarb-eject --no-deps`,
	Args:         cobra.NoArgs,
	RunE:         runEject,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

// ejectFlagValues holds the root command's flag bindings.
type ejectFlagValues struct {
	output      string
	packageSpec string
	scarbPath   string
	profile     string
	noDeps      bool
}

var ejectFlags ejectFlagValues

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVarP(&ejectFlags.output, "output", "o", "",
		"Path of the cairo_project.toml file to overwrite.\n"+
			"Defaults to next to Scarb.toml for this workspace.\n"+
			"Use '-' to write to standard output.")
	rootCmd.Flags().StringVarP(&ejectFlags.packageSpec, "package", "p", "",
		"Package to eject. Defaults to the sole workspace member;\n"+
			"required when the workspace has several members.")
	rootCmd.Flags().BoolVar(&ejectFlags.noDeps, "no-deps", false,
		"Leave the global dependency mapping empty.\n"+
			"Per-crate override dependencies are still computed.")
	rootCmd.Flags().StringVar(&ejectFlags.scarbPath, "scarb-path", "",
		"Scarb executable to query.\n"+
			"Precedence: --scarb-path > scarb-eject.yaml > $SCARB > scarb on $PATH")
	rootCmd.Flags().StringVar(&ejectFlags.profile, "profile", "",
		"Scarb profile to query metadata under")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
