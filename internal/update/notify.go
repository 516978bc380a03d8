package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faspi/cli/internal/output"
)

// DefaultTimeout bounds the whole check.
const DefaultTimeout = 5 * time.Second

// Notify checks for a release newer than current and prints a one-line notice
// if there is one. Failures are logged and never returned.
func Notify(ctx context.Context, c Checker, current string, timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var info *VersionInfo
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var err error
		info, err = c.CheckLatest(ctx)
		return err
	}, output.WithTitle("Checking for updates..."), output.WithTimeout(timeout))

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		output.Debug("update check timed out", "timeout", timeout)
		return
	case err != nil:
		output.Warn("update check failed", "err", err)
		return
	case info == nil:
		return
	}

	if CompareSemver(info.Version, current) <= 0 {
		output.Debug("faspi is up to date", "current", current, "latest", info.Version)
		return
	}

	output.Println(output.StyleDim.Render(fmt.Sprintf(
		"A new faspi release is available: %s (current %s)", info.Version, current)))
}
