package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"power-cost/core/engine"
	"power-cost/internal/config"
)

// CLIFormatter renders a human-readable table
type CLIFormatter struct {
	// ShowSeries also prints the day-by-day cumulative series
	ShowSeries bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the batch result as an aligned table
func (f *CLIFormatter) Render(w io.Writer, result *engine.BatchResult) error {
	currency := config.Get().Output.CurrencySymbol

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ACCOUNT\tPERIOD\tNEXT INVOICE\tUSAGE kWh\tENERGY %s\tBASE %s\tTOTAL %s\tESTIMATED\n",
		currency, currency, currency)
	for _, p := range result.Accounts {
		nextInvoice := "-"
		if !p.NextInvoice.IsZero() {
			nextInvoice = p.NextInvoice.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s .. %s\t%s\t%.1f\t%s\t%s\t%s\t%.0f%%\n",
			p.Account,
			p.PeriodStart.Format("2006-01-02"),
			p.PeriodEnd.Format("2006-01-02"),
			nextInvoice,
			p.UsageKWh,
			p.EnergyCost.StringFixed(2),
			p.BaseCost.StringFixed(2),
			p.TotalCost.StringFixed(2),
			p.EstimatedDayRatio*100)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if f.ShowSeries {
		for _, p := range result.Accounts {
			fmt.Fprintf(w, "\n%s day series:\n", p.Account)
			for _, pt := range p.Series {
				marker := " "
				if !pt.Measured {
					marker = "~"
				}
				fmt.Fprintf(w, "  %s %s%.2f\n", pt.Date.Format("2006-01-02"), marker, pt.Estimate)
			}
		}
	}

	for _, s := range result.Skipped {
		fmt.Fprintf(w, "skipped %s: %s\n", s.Account, s.Reason)
	}
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "warning [%s] %s: %s\n", warn.Kind, warn.Account, warn.Detail)
	}
	return nil
}
