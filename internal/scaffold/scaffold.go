// Package scaffold creates new FastAPI projects in the layered layout.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/features"
	"github.com/faspi/cli/internal/generator"
	"github.com/faspi/cli/internal/naming"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/project"
	"github.com/faspi/cli/internal/templates"
)

// Options configures project creation.
type Options struct {
	// Name is the project name and directory name.
	Name string

	// Dir is the parent directory. Empty means the working directory.
	Dir string

	// Features selects the optional features to install.
	Features features.Config

	// ExtraDependencies is appended verbatim to requirements.txt.
	ExtraDependencies string

	// Force allows creating the project in a non-empty directory.
	Force bool

	// Version is recorded in the project manifest.
	Version string
}

// Result describes a created project.
type Result struct {
	// Root is the project directory.
	Root string

	// Files maps every written path, relative to Root, to a description.
	Files map[string]string

	// Plan is the feature installation plan.
	Plan *features.Plan
}

// projectFile is a static file rendered from the project templates.
type projectFile struct {
	Template    string
	Path        string
	Description string
}

var projectFiles = []projectFile{
	{"project/example_entity.py", "app/core/entities/example.py", "example entity"},
	{"project/example_repository_interface.py", "app/core/interfaces/example_repository.py", "example repository port"},
	{"project/example_repository.py", "app/infrastructure/repositories/example_repository.py", "example repository"},
	{"project/example_use_case.py", "app/application/use_cases/get_example.py", "example use case"},
	{"project/example_schema.py", "app/interfaces/api/v1/schemas/example.py", "example schema"},
	{"project/example_dependencies.py", "app/interfaces/api/v1/dependencies/repositories.py", "repository providers"},
	{"project/example_endpoint.py", generator.EndpointsDir + "/example.py", "example route"},
	{"project/settings.py", "app/config/settings.py", "settings"},
	{"project/exceptions.py", "app/core/exceptions.py", "domain errors"},
	{"project/types.py", "app/core/types.py", "shared types"},
	{"project/base.py", "app/infrastructure/database/base.py", "declarative base"},
	{"project/README.md", "README.md", "readme"},
	{"project/gitignore", ".gitignore", "ignore patterns"},
}

// Scaffolder creates a project from Options.
type Scaffolder struct {
	opts Options
	root string
}

// New returns a Scaffolder for opts.
func New(opts Options) *Scaffolder {
	return &Scaffolder{
		opts: opts,
		root: filepath.Join(opts.Dir, opts.Name),
	}
}

// Root returns the project directory.
func (s *Scaffolder) Root() string {
	return s.root
}

// Validate checks the project name and the target directory without writing
// anything.
func (s *Scaffolder) Validate() error {
	if err := naming.ValidateProjectName(s.opts.Name); err != nil {
		return err
	}
	return s.checkTarget()
}

// Create writes the full project. It stops at the first I/O error and keeps
// whatever was already written.
func (s *Scaffolder) Create() (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	output.Debug("creating project", "name", s.opts.Name, "root", s.root, "features", s.opts.Features.Names())

	result := &Result{Root: s.root, Files: make(map[string]string)}

	if err := createLayout(s.root); err != nil {
		return nil, err
	}

	data := templates.NewData("example").WithProject(s.opts.Name)
	for _, f := range projectFiles {
		if err := s.render(f.Template, f.Path, data); err != nil {
			return nil, err
		}
		result.Files[f.Path] = f.Description
	}

	if _, err := generator.EndpointRegistry().Register(s.root, "example", templates.NewData("example")); err != nil {
		return nil, err
	}

	if err := s.writeManifest(); err != nil {
		return nil, err
	}
	result.Files[project.ManifestFile] = "faspi project manifest"

	plan, err := features.Install(s.root, s.opts.Features)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	for _, c := range plan.Contributions {
		for _, f := range c.Files {
			result.Files[f.Path] = c.Flag.String() + " feature"
		}
	}

	if err := s.writeMetadata(plan); err != nil {
		return nil, err
	}
	result.Files["requirements.txt"] = "dependencies"
	result.Files[".env.example"] = "environment template"
	result.Files["app/main.py"] = "application entry point"

	if err := writeMarkers(s.root); err != nil {
		return nil, err
	}

	return result, nil
}

// checkTarget refuses to write into a non-empty directory unless forced.
func (s *Scaffolder) checkTarget() error {
	info, err := os.Stat(s.root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oerrors.NewIOError("checking project directory", s.root, err)
	}
	if !info.IsDir() {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("%s exists and is not a directory", s.root),
			"choose another project name",
		)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return oerrors.NewIOError("reading project directory", s.root, err)
	}
	if len(entries) > 0 && !s.opts.Force {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("directory %s is not empty", s.root),
			"use --force to generate into it anyway",
		)
	}
	return nil
}

func (s *Scaffolder) writeManifest() error {
	m := &project.Manifest{
		Name:         s.opts.Name,
		Style:        project.StyleLayered,
		Features:     s.opts.Features.Names(),
		FaspiVersion: s.opts.Version,
	}
	content, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("encoding project manifest: %w", err)
	}
	return generator.WriteFile(s.root, project.ManifestFile, content)
}

// writeMetadata composes the files every feature contributes to, in one write
// each.
func (s *Scaffolder) writeMetadata(plan *features.Plan) error {
	reqs := Manifest{Features: plan.Requirements(), Extra: s.opts.ExtraDependencies}
	if err := generator.WriteFile(s.root, "requirements.txt", []byte(reqs.String())); err != nil {
		return err
	}

	if err := generator.WriteFile(s.root, ".env.example", []byte(plan.EnvTemplate())); err != nil {
		return err
	}

	return s.render("project/main.py", "app/main.py", plan.EntryPoint())
}

func (s *Scaffolder) render(tmpl, rel string, data any) error {
	content, err := templates.Render(tmpl, data)
	if err != nil {
		return err
	}
	return generator.WriteFile(s.root, rel, content)
}
