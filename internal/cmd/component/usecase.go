package component

import (
	"github.com/spf13/cobra"

	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/generator"
)

// NewUseCaseCmd creates the usecase command.
func NewUseCaseCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "usecase <name>",
		Short: "Generate a standalone use case",
		Long: `Generate a standalone use case in app/application/use_cases.

The use case depends on the example repository port created by faspi new.

Examples:
  faspi usecase publish`,
		Args:        cobra.ExactArgs(1),
		Annotations: generates(),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(g *generator.Generator) ([]*generator.Result, error) {
				return single(g.UseCase(args[0]))
			})
		},
	}
}
