package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cairotools/scarb-eject/internal/config"
	"github.com/cairotools/scarb-eject/internal/logging"
	"github.com/cairotools/scarb-eject/internal/project"
	"github.com/cairotools/scarb-eject/internal/scarb"
	"github.com/cairotools/scarb-eject/pkg/eject"
)

// ejectOptions is the effective run configuration after merging flags with
// the optional scarb-eject.yaml file. Flags win.
type ejectOptions struct {
	output      string
	packageSpec string
	scarbPath   string
	profile     string
	noDeps      bool
}

func runEject(cmd *cobra.Command, args []string) error {
	// Scarb honors SCARB_* environment variables; load a project .env
	// before spawning it, ignoring absence.
	_ = godotenv.Load()

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	opts, err := resolveOptions(cmd, ejectFlags)
	if err != nil {
		return err
	}

	metaCmd := &scarb.MetadataCommand{
		ScarbPath: opts.scarbPath,
		Profile:   opts.profile,
	}
	logger.Verbose("running %s %s", metaCmd.Executable(), strings.Join(metaCmd.Args(), " "))
	meta, err := metaCmd.Exec(cmd.Context())
	if err != nil {
		return err
	}

	mainPkg, err := scarb.NewPackagesFilter(opts.packageSpec).MatchOne(meta)
	if err != nil {
		return err
	}
	logger.Verbose("ejecting package %s", mainPkg.ID)

	var resolverOpts []project.ResolverOption
	if opts.noDeps {
		resolverOpts = append(resolverOpts, project.WithoutDependencies())
	}
	projectConfig, err := project.NewResolver(logger, resolverOpts...).Resolve(meta, mainPkg)
	if err != nil {
		return err
	}

	rendered, err := project.Render(projectConfig)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = filepath.Join(meta.Workspace.Root, eject.ProjectFileName)
	}
	return writeProject(cmd.OutOrStdout(), outputPath, rendered, logger)
}

// resolveOptions loads the optional tool config from the invocation
// directory and merges it under the command-line flags.
func resolveOptions(cmd *cobra.Command, flags ejectFlagValues) (ejectOptions, error) {
	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = &config.ToolConfig{}
	} else if err != nil {
		return ejectOptions{}, fmt.Errorf("%w: %s: %v", eject.ErrInvalidConfig, config.ConfigFileName, err)
	}
	return mergeOptions(flags, cmd.Flags().Changed, cfg), nil
}

// mergeOptions applies flag > config > default precedence. changed reports
// whether a flag was set explicitly on the command line.
func mergeOptions(flags ejectFlagValues, changed func(string) bool, cfg *config.ToolConfig) ejectOptions {
	opts := ejectOptions{
		output:      flags.output,
		packageSpec: flags.packageSpec,
		scarbPath:   flags.scarbPath,
		profile:     flags.profile,
		noDeps:      flags.noDeps,
	}
	if opts.output == "" {
		opts.output = cfg.Output
	}
	if opts.scarbPath == "" {
		opts.scarbPath = cfg.ScarbPath
	}
	if opts.profile == "" {
		opts.profile = cfg.Profile
	}
	if !changed("no-deps") {
		opts.noDeps = cfg.NoDeps
	}
	return opts
}

// writeProject delivers the rendered document: to stdout for the sentinel
// path, to a file otherwise.
func writeProject(stdout io.Writer, path string, rendered []byte, logger eject.Logger) error {
	if path == eject.StdoutPath {
		_, err := stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(path, rendered, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Verbose("wrote %s", path)
	return nil
}
