// Package cmdutil provides shared command utilities for the faspi commands.
// It centralizes flag groups, project root discovery and error reporting.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/features"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/project"
)

// FeatureFlags holds one boolean flag per optional feature (new).
type FeatureFlags struct {
	values map[features.Flag]*bool
}

// AddTo registers --sql, --auth, --cors, --cache, --tasks and --supabase on
// the given cobra command.
func (f *FeatureFlags) AddTo(cmd *cobra.Command) {
	f.values = make(map[features.Flag]*bool, len(features.All))
	for _, flag := range features.All {
		f.values[flag] = cmd.Flags().Bool(flag.String(), false, "Include "+flag.Description())
	}
}

func (f *FeatureFlags) value(flag features.Flag) bool {
	if v, ok := f.values[flag]; ok && v != nil {
		return *v
	}
	return false
}

// Config returns the configuration described by the flag values alone.
func (f *FeatureFlags) Config() features.Config {
	cfg := features.NewConfig()
	for _, flag := range features.All {
		cfg = cfg.With(flag, f.value(flag))
	}
	return cfg
}

// Forced returns the features that were set explicitly on the command line,
// with their values. Prompts skip these.
func (f *FeatureFlags) Forced(cmd *cobra.Command) map[features.Flag]bool {
	forced := make(map[features.Flag]bool)
	for _, flag := range features.All {
		if cmd.Flags().Changed(flag.String()) {
			forced[flag] = f.value(flag)
		}
	}
	return forced
}

// ResolveProjectRoot returns the nearest enclosing faspi project, or the
// working directory when there is none. A manifest for another style, or one
// naming an unknown feature, is a configuration error.
func ResolveProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	root, found := project.FindRoot(cwd)
	if !found {
		output.Debug("no project manifest found", "root", root)
		return root, nil
	}

	m, err := project.Load(root)
	if err != nil {
		return "", err
	}
	location := filepath.Join(root, project.ManifestFile)
	if m.Style != "" && m.Style != project.StyleLayered {
		return "", &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  fmt.Sprintf("unsupported project style %q", m.Style),
			Location: location,
			Hint:     fmt.Sprintf("faspi only generates into %q projects", project.StyleLayered),
			Cause:    oerrors.ErrConfiguration,
		}
	}

	enabled := make([]features.Flag, 0, len(m.Features))
	for _, name := range m.Features {
		flag, err := features.ParseFlag(name)
		if err != nil {
			return "", &oerrors.DetailError{
				Type:     "invalid configuration",
				Message:  err.Error(),
				Location: location,
				Hint:     "valid features are sql, auth, cors, cache, tasks and supabase",
				Cause:    oerrors.ErrConfiguration,
			}
		}
		enabled = append(enabled, flag)
	}

	output.Debug("resolved project root", "root", root, "project", m.Name,
		"features", features.NewConfig(enabled...).Names())
	return root, nil
}
