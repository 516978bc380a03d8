// Package prompt resolves feature selection interactively.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/features"
	"github.com/faspi/cli/internal/output"
)

// Asker asks a yes/no question.
type Asker interface {
	Confirm(title string, def bool) (bool, error)
}

// Resolve asks about every feature not present in forced and returns the
// resulting configuration. Forced flags keep their command-line value.
func Resolve(cfg features.Config, forced map[features.Flag]bool, asker Asker) (features.Config, error) {
	for _, flag := range features.All {
		if on, ok := forced[flag]; ok {
			cfg = cfg.With(flag, on)
			continue
		}

		on, err := asker.Confirm(fmt.Sprintf("Include %s?", flag.Description()), cfg.Enabled(flag))
		if err != nil {
			return cfg, err
		}
		output.Debug("feature selected", "feature", flag, "enabled", on)
		cfg = cfg.With(flag, on)
	}
	return cfg, nil
}

// HuhAsker asks through a huh confirm form.
type HuhAsker struct {
	theme *huh.Theme
}

// NewHuhAsker returns the default terminal Asker.
func NewHuhAsker() *HuhAsker {
	return &HuhAsker{theme: newTheme()}
}

// Confirm implements Asker. Aborting the form returns ErrCancelled.
func (a *HuhAsker) Confirm(title string, def bool) (bool, error) {
	value := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	)).WithTheme(a.theme)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, oerrors.ErrCancelled
		}
		return false, fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(output.ColorCyan).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("0")).
		Background(output.ColorGreen)
	t.Blurred = t.Focused
	return t
}

// Interactive reports whether prompts should be shown.
func Interactive(noInteractive, configured bool) bool {
	return !noInteractive && configured && output.IsInputTTY()
}
