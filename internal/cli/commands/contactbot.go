package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/internal/logging"
	"github.com/ccollicutt/logtally/pkg/contacts"
	"github.com/ccollicutt/logtally/pkg/style"
)

// ContactbotOptions holds command-line options for contactbot.
type ContactbotOptions struct {
	NoColor  bool
	LogLevel string
}

// NewContactbotCommand creates the contactbot root command.
func NewContactbotCommand() *cobra.Command {
	opts := &ContactbotOptions{}

	cmd := &cobra.Command{
		Use:   "contactbot",
		Short: "Interactive contact book",
		Long: `Start an interactive assistant that keeps a contact book for the
session. Type "help" at the prompt for the list of commands and "exit" or
"close" to quit. Contacts are not saved.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContactbot(cmd, opts)
		},
	}
	withVersion(cmd)

	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "error", "Diagnostic log level (debug|info|warn|error)")

	return cmd
}

func runContactbot(cmd *cobra.Command, opts *ContactbotOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.LogLevel)
	shell := contacts.NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), style.New(!opts.NoColor), logger)
	if err := shell.Run(ctx); err != nil {
		return fmt.Errorf("contactbot: %w", err)
	}
	return nil
}
