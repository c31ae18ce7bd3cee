package main

import (
	"fmt"

	"github.com/metinatakli/jobmatch/internal/vcs"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, vcs.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
