package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "labelscan %s\n", Version)
		fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
