package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/pkg/numbers"
)

// NumsumOptions holds command-line options for numsum.
type NumsumOptions struct {
	List bool
}

// NewNumsumCommand creates the numsum root command.
func NewNumsumCommand() *cobra.Command {
	opts := &NumsumOptions{}

	cmd := &cobra.Command{
		Use:   "numsum [text...]",
		Short: "Sum the numbers found in text",
		Long: `Sum every whitespace-separated number in the given text.

The text is taken from the arguments, joined by spaces, or from stdin when
no arguments are given. Words that are not numbers are ignored.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNumsum(cmd, args, opts)
		},
	}
	withVersion(cmd)

	cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "Print each number found before the total")

	return cmd
}

func runNumsum(cmd *cobra.Command, args []string, opts *NumsumOptions) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	out := cmd.OutOrStdout()
	if opts.List {
		for n := range numbers.Numbers(text) {
			fmt.Fprintln(out, numbers.Format(n))
		}
	}

	total := numbers.SumProfit(text, numbers.Numbers)
	_, err := fmt.Fprintf(out, "Total income: %s\n", numbers.Format(total))
	return err
}
