package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time via -ldflags "-X main.version=..."
var version = "dev"

// versionCmd prints the mdmexec version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mdmexec version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mdmexec %s\n", version)
	},
}
