// Package cmd provides the CLI commands for power-cost.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"power-cost/adapters/csvdata"
	"power-cost/adapters/hclconf"
	"power-cost/core/engine"
	"power-cost/internal/config"
	"power-cost/internal/logging"
)

var (
	cfgFile string
	dataDir string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "power-cost",
	Short: "Estimate electricity usage and invoice costs from manual meter readings",
	Long: `power-cost projects electricity consumption and invoice costs for
metered accounts from irregular manual meter readings, a price change
history and an annual invoice anniversary date.

Examples:
  power-cost init
  power-cost estimate
  power-cost estimate --format json --as-of 2025-06-01
  power-cost project --account garage --from 2025-01-01 --to 2025-04-01`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.power-cost.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	logCfg := config.Get().Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
}

// resolveDataDir returns the effective data directory
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	return config.Get().Data.Directory
}

// loadInput assembles the engine input from the data directory. Identity
// and invoice data come from accounts.hcl when present, otherwise from
// meters.csv and invoices.csv.
func loadInput() (*engine.Input, error) {
	dir := resolveDataDir()

	readings, err := csvdata.LoadReadings(dir)
	if err != nil {
		return nil, err
	}
	tariffs, err := csvdata.LoadTariffs(dir)
	if err != nil {
		return nil, err
	}

	input := &engine.Input{Readings: readings, Tariffs: tariffs}

	accountsPath := filepath.Join(dir, config.Get().Data.AccountsFile)
	if _, err := os.Stat(accountsPath); err == nil {
		input.Assignments, input.Invoices, err = hclconf.LoadAccounts(accountsPath)
		if err != nil {
			return nil, err
		}
		return input, nil
	}

	if input.Assignments, err = csvdata.LoadMeters(dir); err != nil {
		return nil, err
	}
	if input.Invoices, err = csvdata.LoadInvoices(dir); err != nil {
		return nil, err
	}
	return input, nil
}
