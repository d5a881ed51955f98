// Package cmd - estimate command
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"power-cost/core/engine"
	"power-cost/core/output"
	"power-cost/internal/config"
	"power-cost/internal/logging"
)

var (
	estimateFormat string
	estimateAsOf   string
	estimateSeries bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Project the current billing year for every account",
	Long: `Project usage and cost for every account's current billing year,
delimited by the next invoice anniversary after the reference date.

Accounts with too little data are skipped and reported; the rest of the
batch continues.

Examples:
  power-cost estimate
  power-cost estimate --format json
  power-cost estimate --as-of 2025-06-01 --series`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVar(&estimateAsOf, "as-of", "", "reference date YYYY-MM-DD (default today)")
	estimateCmd.Flags().BoolVar(&estimateSeries, "series", false, "print the day-by-day series")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	now := time.Now()
	if estimateAsOf != "" {
		parsed, err := time.Parse("2006-01-02", estimateAsOf)
		if err != nil {
			return err
		}
		now = parsed
	}

	input, err := loadInput()
	if err != nil {
		return err
	}

	logging.Info("running estimation batch",
		zap.Int("meters", len(input.Assignments)),
		zap.Int("readings", len(input.Readings)),
		zap.Int("tariffs", len(input.Tariffs)))

	result, err := engine.New().Run(input, now)
	if err != nil {
		return err
	}

	format := estimateFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	formatter := output.ForFormat(format)
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.ShowSeries = estimateSeries || config.Get().Output.ShowSeries
	}
	return formatter.Render(os.Stdout, result)
}
