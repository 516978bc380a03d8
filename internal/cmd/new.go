package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/cmdutil"
	"github.com/faspi/cli/internal/features"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/prompt"
	"github.com/faspi/cli/internal/scaffold"
	"github.com/faspi/cli/internal/version"
)

// interactive reports whether feature prompts run.
var interactive = prompt.Interactive

// newAsker returns the Asker used for interactive feature selection.
var newAsker = func() prompt.Asker {
	return prompt.NewHuhAsker()
}

type newOptions struct {
	features      cmdutil.FeatureFlags
	dependencies  string
	dir           string
	noInteractive bool
	force         bool
}

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var opts newOptions

	c := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new FastAPI project",
		Long: `Create a new FastAPI project in a layered architecture.

The project gets core, application, infrastructure and interfaces layers,
an example route wired end to end, and a tests tree mirroring the app.

Optional features:
  --sql       SQLAlchemy ORM support
  --auth      JWT authentication
  --cors      CORS middleware
  --cache     Redis and FastAPI-Cache support
  --tasks     Celery task queue and Flower monitoring
  --supabase  Supabase integration

On a terminal, features not set on the command line are asked for
interactively. Use --no-interactive to take the flags as given.

Examples:
  # Create a project and choose features interactively
  faspi new my-api

  # Create a project with SQL and auth, no prompts
  faspi new my-api --sql --auth --no-interactive

  # Append extra requirements
  faspi new my-api -d "httpx==0.28.1"`,
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			cmdtypes.AnnotationGenerates: "true",
		},
		RunE: func(c *cobra.Command, args []string) error {
			return cmdutil.Fail("project creation failed", runNew(c, cfg, args[0], &opts))
		},
	}

	opts.features.AddTo(c)
	c.Flags().StringVarP(&opts.dependencies, "dependencies", "d", "",
		"Extra requirements appended verbatim to requirements.txt")
	c.Flags().StringVar(&opts.dir, "dir", "",
		"Parent directory for the project (defaults to the working directory)")
	c.Flags().BoolVar(&opts.noInteractive, "no-interactive", false,
		"Do not prompt for features")
	c.Flags().BoolVar(&opts.force, "force", false,
		"Create the project even if the target directory is not empty")

	return c
}

func runNew(c *cobra.Command, cfg *cmdtypes.GlobalConfig, name string, opts *newOptions) error {
	scaffoldOpts := scaffold.Options{
		Name:              name,
		Dir:               opts.dir,
		ExtraDependencies: opts.dependencies,
		Force:             opts.force,
		Version:           version.Version,
	}
	if err := scaffold.New(scaffoldOpts).Validate(); err != nil {
		return err
	}

	selected, err := resolveFeatures(c, cfg, opts)
	if err != nil {
		return err
	}

	scaffoldOpts.Features = selected
	s := scaffold.New(scaffoldOpts)

	result, err := s.Create()
	if err != nil {
		return err
	}

	output.Println("")
	output.Print(output.RenderFileTree(name, result.Files))
	output.Println("")

	summary := fmt.Sprintf("Created project %s", name)
	if enabled := selected.Names(); len(enabled) > 0 {
		summary += fmt.Sprintf(" with %v", enabled)
	}
	output.Summary(summary)

	output.Println(output.StyleDim.Render(fmt.Sprintf("Next: cd %s && pip install -r requirements.txt && uvicorn app.main:app --reload",
		filepath.Join(opts.dir, name))))
	return nil
}

// resolveFeatures combines the feature flags with interactive answers. Flags
// set on the command line are never asked about.
func resolveFeatures(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *newOptions) (features.Config, error) {
	selected := opts.features.Config()

	if !interactive(opts.noInteractive, cfg.Settings().Interactive) {
		output.Debug("feature prompts disabled", "features", selected.Names())
		return selected, nil
	}

	return prompt.Resolve(selected, opts.features.Forced(c), newAsker())
}
