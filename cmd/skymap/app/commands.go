package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/skymap/pkg/build"
	"github.com/agentstation/skymap/pkg/logging"
	"github.com/agentstation/skymap/pkg/sources"
)

// NewBuildCommand creates the build command, the tool's main operation:
// fetch every source catalog, reconcile them and write the binary catalog.
func (a *App) NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the binary star catalog",
		Long: `Build fetches the source catalogs, reconciles them into a single
star registry and serializes it to the output file.

The output is written atomically: a failed build leaves no file behind.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuild(cmd)
		},
	}

	cmd.Flags().StringVarP(&a.config.OutputFile, "output", "o", a.config.OutputFile, "output catalog file")
	cmd.Flags().StringVar(&a.config.SourceDir, "source-dir", a.config.SourceDir, "read sources from this directory instead of downloading")
	cmd.Flags().StringVar(&a.config.CacheDir, "cache-dir", a.config.CacheDir, "download cache directory")
	cmd.Flags().DurationVar(&a.config.CacheTTL, "cache-ttl", a.config.CacheTTL, "how long cached downloads stay fresh")
	cmd.Flags().StringVar(&a.config.RulesFile, "rules", a.config.RulesFile, "inclusion rules file (defaults to the embedded rules)")
	cmd.Flags().BoolVar(&a.config.Double, "double", a.config.Double, "write double-precision coordinates")

	return cmd
}

// runBuild executes the full build pipeline and writes the catalog.
func (a *App) runBuild(cmd *cobra.Command) error {
	cfg, err := a.buildConfig()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)

	p := &build.Pipeline{
		Provider: a.provider(),
		Config:   cfg,
	}

	reg, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if err := build.WriteCatalog(a.config.OutputFile, reg, cfg); err != nil {
		return err
	}

	a.logger.Info().
		Str("path", a.config.OutputFile).
		Int("stars", reg.Len()).
		Bool("double", cfg.DoublePrecision).
		Msg("Catalog written")
	return nil
}

// buildConfig resolves the build configuration from the rules file or the
// embedded defaults.
func (a *App) buildConfig() (*build.Config, error) {
	var (
		cfg *build.Config
		err error
	)
	if a.config.RulesFile != "" {
		cfg, err = build.LoadConfig(a.config.RulesFile)
	} else {
		cfg, err = build.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	cfg.DoublePrecision = a.config.Double
	return cfg, nil
}

// provider picks the source provider: a local directory when configured,
// otherwise cached HTTP downloads.
func (a *App) provider() sources.Provider {
	if a.config.SourceDir != "" {
		return sources.NewDirProvider(a.config.SourceDir)
	}

	p := sources.NewHTTPProvider(a.config.CacheDir)
	p.TTL = a.config.CacheTTL
	return p
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skymap %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
