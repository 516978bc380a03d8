// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var short bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show faspi version information.

Displays:
  - the faspi banner and version
  - build date, commit, Go version and platform`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			runVersion(short)
			return nil
		},
	}

	c.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return c
}

func runVersion(short bool) {
	info := version.Get()

	if short {
		output.Println(info.Version)
		return
	}

	if output.IsTTY() {
		output.Print(output.StyleNoun.Render(info.Banner()))
		output.Println("")
	}
	output.Println(info.String())
}
