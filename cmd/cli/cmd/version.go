// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridable at build time
var Version = "0.1.0"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("power-cost %s\n", Version)
	},
}
