package commands

import "github.com/spf13/cobra"

// Version is set via ldflags at build time.
var Version = "dev"

// withVersion enables --version on cmd, printing "<name> <version>".
func withVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}
