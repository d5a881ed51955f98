// Package cmd - project command
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"power-cost/adapters/export"
	"power-cost/core/engine"
	"power-cost/core/output"
	"power-cost/core/types"
)

var (
	projectAccount string
	projectFrom    string
	projectTo      string
	projectExport  string
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project one account over an explicit date window",
	Long: `Reconstruct the day-by-day cumulative usage estimate for one account
over an arbitrary window and price it against the tariff history.

The window end is exclusive. Days past the last real reading are
extrapolated with the mean historical rate and marked accordingly.

Examples:
  power-cost project --account garage --from 2025-01-01 --to 2025-04-01
  power-cost project --account garage --from 2025-01-01 --to 2026-01-01 --export garage.xlsx`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&projectAccount, "account", "a", "", "account label (required)")
	projectCmd.Flags().StringVar(&projectFrom, "from", "", "window start YYYY-MM-DD (required)")
	projectCmd.Flags().StringVar(&projectTo, "to", "", "window end YYYY-MM-DD, exclusive (required)")
	projectCmd.Flags().StringVar(&projectExport, "export", "", "write a statement to this .xlsx or .pdf file")
	_ = projectCmd.MarkFlagRequired("account")
	_ = projectCmd.MarkFlagRequired("from")
	_ = projectCmd.MarkFlagRequired("to")
}

func runProject(cmd *cobra.Command, args []string) error {
	from, err := time.Parse("2006-01-02", projectFrom)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := time.Parse("2006-01-02", projectTo)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	input, err := loadInput()
	if err != nil {
		return err
	}

	proj, err := engine.New().ProjectWindow(input, types.AccountLabel(projectAccount), from, to)
	if err != nil {
		return err
	}

	if projectExport != "" {
		if err := writeStatement(projectExport, proj); err != nil {
			return err
		}
		fmt.Printf("statement written to %s\n", projectExport)
	}

	formatter := &output.CLIFormatter{ShowSeries: projectExport == ""}
	return formatter.Render(os.Stdout, &engine.BatchResult{
		AsOf:     time.Now(),
		Accounts: []*types.AccountProjection{proj},
	})
}

func writeStatement(path string, proj *types.AccountProjection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".xlsx"):
		return export.WriteXLSX(f, proj)
	case strings.HasSuffix(path, ".pdf"):
		return export.WritePDF(f, proj)
	default:
		return fmt.Errorf("unsupported export format, use .xlsx or .pdf: %s", path)
	}
}
