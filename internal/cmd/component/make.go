// Package component provides the `faspi make` command group and the
// `faspi usecase` command.
package component

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/cmdutil"
	"github.com/faspi/cli/internal/generator"
)

// NewMakeCmd creates the make command group.
func NewMakeCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "make",
		Short: "Generate components",
		Long: `Generate components inside a faspi project.

Each component gets an implementation file, a test file, and a line in the
package registry of its directory. Commands run from anywhere inside a
project; the nearest .faspi.yaml marks the project root.`,
	}

	c.AddCommand(
		NewRouteCmd(cfg),
		NewModelCmd(cfg),
		newGenericCmd(cfg, "service", "Generate an application service"),
		newGenericCmd(cfg, "core", "Generate a core domain module"),
		NewEntityCmd(cfg),
	)

	return c
}

// NewRouteCmd creates the make route command.
func NewRouteCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var method string

	c := &cobra.Command{
		Use:   "route <name>",
		Short: "Generate a single API route",
		Long: `Generate a single API route bound to one HTTP method.

The route is registered in the endpoints package and served at /<name>.

Examples:
  # GET /greet (default method)
  faspi make route greet

  # POST /greet
  faspi make route greet --method POST`,
		Args:        cobra.ExactArgs(1),
		Annotations: generates(),
		RunE: func(_ *cobra.Command, args []string) error {
			if method == "" {
				method = cfg.Settings().DefaultMethod
			}
			return run(func(g *generator.Generator) ([]*generator.Result, error) {
				return single(g.Route(args[0], method))
			})
		},
	}

	c.Flags().StringVarP(&method, "method", "m", "",
		"HTTP method ("+strings.Join(generator.ValidMethods, ", ")+"; default from config, GET)")

	return c
}

// NewModelCmd creates the make model command.
func NewModelCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:         "model <name>",
		Short:       "Generate a database model",
		Args:        cobra.ExactArgs(1),
		Annotations: generates(),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(g *generator.Generator) ([]*generator.Result, error) {
				return single(g.Model(args[0]))
			})
		},
	}
}

func newGenericCmd(_ *cmdtypes.GlobalConfig, tag, short string) *cobra.Command {
	return &cobra.Command{
		Use:         tag + " <name>",
		Short:       short,
		Args:        cobra.ExactArgs(1),
		Annotations: generates(),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(g *generator.Generator) ([]*generator.Result, error) {
				return single(g.Generic(tag, args[0]))
			})
		},
	}
}

// NewEntityCmd creates the make entity command.
func NewEntityCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "entity <name>",
		Short: "Generate a full entity slice",
		Long: `Generate a full entity slice across every layer.

In order: the entity, its repository interface, the CRUD use cases, the
repository implementation, the database model, the API schemas and the
CRUD routes. The first failure stops generation; files already written
are kept.`,
		Args:        cobra.ExactArgs(1),
		Annotations: generates(),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(g *generator.Generator) ([]*generator.Result, error) {
				return g.Entity(args[0])
			})
		},
	}
}

func generates() map[string]string {
	return map[string]string{cmdtypes.AnnotationGenerates: "true"}
}

func single(r *generator.Result, err error) ([]*generator.Result, error) {
	if err != nil {
		return nil, err
	}
	return []*generator.Result{r}, nil
}

// run generates into the resolved project root and reports the outcome.
func run(gen func(*generator.Generator) ([]*generator.Result, error)) error {
	root, err := cmdutil.ResolveProjectRoot()
	if err != nil {
		return cmdutil.Fail("resolving project root", err)
	}

	results, err := gen(generator.New(root))
	cmdutil.PrintResults(results)
	if err != nil {
		return cmdutil.Fail("generation failed", err)
	}
	return nil
}
