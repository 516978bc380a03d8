package cmdutil

import (
	"errors"
	"fmt"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/generator"
	"github.com/faspi/cli/internal/output"
)

// Fail reports err to stderr and returns it wrapped in an ExitError marked
// as printed, so main does not print it a second time.
// Structured errors print their full diagnostic; anything else is logged
// under msg.
func Fail(msg string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return err
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Details(detail.Error())
	} else {
		output.Error(msg, "error", err)
	}

	exitErr = oerrors.NewExitError(err)
	exitErr.Printed = true
	output.Debug("command failed", "exit", exitErr.Code, "reason", oerrors.ExitCodeName(exitErr.Code))
	return exitErr
}

// PrintResults prints a one-line summary for generated components.
func PrintResults(results []*generator.Result) {
	for _, r := range results {
		output.Debug("component generated",
			"kind", r.Kind,
			"impl", r.ImplPath,
			"test", r.TestPath,
			"registered", r.Registered,
		)
	}

	switch len(results) {
	case 0:
		return
	case 1:
		output.Summary(fmt.Sprintf("Generated %s %s", results[0].Kind, results[0].ImplPath))
	default:
		output.Summary(fmt.Sprintf("Generated %d components", len(results)))
	}
}
