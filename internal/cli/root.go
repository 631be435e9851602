// Package cli provides the entry points of the logtally, numsum and
// contactbot binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/internal/cli/commands"
)

// Execute runs logtally and returns the exit code.
func Execute() int {
	return run(commands.NewLogtallyCommand(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteNumsum runs numsum and returns the exit code.
func ExecuteNumsum() int {
	return run(commands.NewNumsumCommand(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteContactbot runs contactbot and returns the exit code.
func ExecuteContactbot() int {
	return run(commands.NewContactbotCommand(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// run executes cmd with args. User errors are printed to stdout as-is,
// anything else to stderr with an "Error:" prefix. Every failure exits 1.
func run(cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// Cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var userErr *commands.UserError
	if errors.As(err, &userErr) {
		_, _ = fmt.Fprintln(stdout, userErr.Message)
		return 1
	}

	// SilenceErrors prevents Cobra from printing this.
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
