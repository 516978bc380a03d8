package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/cmdutil"
	"github.com/faspi/cli/internal/config"
	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new faspi configuration file",
		Long: `Create a new faspi configuration file with default values.

The configuration file is created at ~/.faspi/config.yaml by default.
Use the --config flag or FASPI_CONFIG to choose a different location.

Examples:
  # Initialize configuration
  faspi config init

  # Overwrite existing configuration
  faspi config init --force`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmdutil.Fail("config init failed", runInit(cfg, force))
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(cfg *cmdtypes.GlobalConfig, force bool) error {
	configFile := ""
	if cfg != nil {
		configFile = cfg.ConfigPath
	}
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return oerrors.WrapIO(err, "checking config file")
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  "configuration already exists",
			Location: expandedPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrConfiguration,
		}
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o700); err != nil {
		return oerrors.NewIOError("could not create configuration directory", filepath.Dir(expandedPath), err)
	}
	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return oerrors.NewIOError("could not write configuration", expandedPath, err)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + expandedPath))
	return nil
}
