// Package cmd - init command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"power-cost/adapters/csvdata"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and empty data files",
	Long: `Create the data directory and any missing data file with its header
row. Existing files are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveDataDir()
		if err := csvdata.InitFiles(dir); err != nil {
			return err
		}
		fmt.Printf("data files initialized in %s\n", dir)
		return nil
	},
}
