// Package main is the entry point for the faspi CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/faspi/cli/internal/cmd"
	oerrors "github.com/faspi/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Cobra usage errors (unknown flag, wrong arg count) land here.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
