package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "circleprogress %s (built %s)\n", Version, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
