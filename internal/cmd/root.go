// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/faspi/cli/internal/cmd/component"
	cmdconfig "github.com/faspi/cli/internal/cmd/config"
	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/cmdutil"
	"github.com/faspi/cli/internal/config"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/update"
	"github.com/faspi/cli/internal/version"
)

// newChecker builds the release checker used after generation commands.
var newChecker = func(url string) update.Checker {
	return update.NewChecker(url, nil)
}

// NewRootCmd creates the root command for the faspi CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag        string
		verboseFlag       bool
		timestampsFlag    bool
		noUpdateCheckFlag bool
	)

	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "faspi",
		Short: "FastAPI project scaffolding",
		Long: `faspi scaffolds FastAPI projects in a layered architecture.

It creates new projects with optional features and generates components
(routes, models, services, use cases and full entities) inside them.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg.Verbose = verboseFlag
			cfg.NoUpdateCheck = noUpdateCheckFlag
			return initializeGlobals(c, cfg, configFlag, timestampsFlag)
		},
		PersistentPostRunE: func(c *cobra.Command, _ []string) error {
			checkForUpdates(c, cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: FASPI_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")
	rootCmd.PersistentFlags().BoolVar(&noUpdateCheckFlag, "no-update-check", false, "Skip the release check after generation")

	rootCmd.AddCommand(
		NewNewCmd(cfg),
		component.NewMakeCmd(cfg),
		component.NewUseCaseCmd(cfg),
		cmdconfig.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, g *cmdtypes.GlobalConfig, configFlag string, timestamps bool) error {
	logCfg := output.LogConfig{Verbose: g.Verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	}
	output.SetupLogging(logCfg)

	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return cmdutil.Fail("resolving config path", err)
	}
	g.ConfigPath, _ = configPath.Value.(string)

	loaded, err := config.NewLoader().Load(g.ConfigPath)
	if err != nil {
		return cmdutil.Fail("loading configuration", err)
	}
	g.Config = loaded

	config.LogResolvedValues(configPath)
	output.Debug("initializing CLI",
		"config", g.ConfigPath,
		"update_check", loaded.UpdateCheck,
		"default_method", loaded.DefaultMethod,
		"interactive", loaded.Interactive,
	)

	return nil
}

// checkForUpdates runs the best-effort release check after commands that
// wrote project files.
func checkForUpdates(c *cobra.Command, g *cmdtypes.GlobalConfig) {
	if c.Annotations[cmdtypes.AnnotationGenerates] == "" {
		return
	}

	settings := g.Settings()
	resolved := config.ResolveUpdateCheck(g.NoUpdateCheck, settings, version.IsDev(version.Version))
	config.LogResolvedValues(resolved)
	if enabled, _ := resolved.Value.(bool); !enabled {
		return
	}

	update.Notify(c.Context(), newChecker(settings.UpdateURL), version.Version, settings.UpdateTimeout)
}
