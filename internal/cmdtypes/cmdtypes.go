// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/component, internal/cmd/config).
package cmdtypes

import (
	"github.com/faspi/cli/internal/config"
	oerrors "github.com/faspi/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created empty by the root command and passed into every sub-command
// constructor; the pre-run hook fills it before any RunE executes.
type GlobalConfig struct {
	Config        *config.Config
	ConfigPath    string // resolved --config path
	Verbose       bool
	NoUpdateCheck bool
}

// Settings returns the loaded configuration, or the defaults when the
// pre-run hook has not populated it.
func (g *GlobalConfig) Settings() *config.Config {
	if g == nil || g.Config == nil {
		return config.DefaultConfig()
	}
	return g.Config
}

// AnnotationGenerates marks commands that write project files. The update
// check only runs after those.
const AnnotationGenerates = "faspi/generates"

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess            = oerrors.ExitSuccess
	ExitGeneralError       = oerrors.ExitGeneralError
	ExitConfigurationError = oerrors.ExitConfigurationError
	ExitCancelled          = oerrors.ExitCancelled
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
