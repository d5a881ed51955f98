// Package export renders an account projection as an XLSX or PDF
// statement for downstream consumers.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"power-cost/core/types"
)

// pdfSeriesCap bounds the day table in the PDF; a full billing year is
// 365-366 rows and anything beyond that is better served by XLSX
const pdfSeriesCap = 366

// WriteXLSX renders the projection as a workbook with a summary sheet
// and a day-series sheet
func WriteXLSX(w io.Writer, p *types.AccountProjection) error {
	f := excelize.NewFile()
	summarySheet := "summary"
	seriesSheet := "series"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(seriesSheet); err != nil {
		return err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Power Cost Projection")
	_ = f.SetCellValue(summarySheet, "A3", "Account")
	_ = f.SetCellValue(summarySheet, "B3", p.Account.String())
	_ = f.SetCellValue(summarySheet, "A4", "Period Start")
	_ = f.SetCellValue(summarySheet, "B4", p.PeriodStart.Format("2006-01-02"))
	_ = f.SetCellValue(summarySheet, "A5", "Period End")
	_ = f.SetCellValue(summarySheet, "B5", p.PeriodEnd.Format("2006-01-02"))
	_ = f.SetCellValue(summarySheet, "A6", "Usage (kWh)")
	_ = f.SetCellValue(summarySheet, "B6", p.UsageKWh)
	_ = f.SetCellValue(summarySheet, "A7", "Energy Cost")
	_ = f.SetCellValue(summarySheet, "B7", p.EnergyCost.InexactFloat64())
	_ = f.SetCellValue(summarySheet, "A8", "Base Cost")
	_ = f.SetCellValue(summarySheet, "B8", p.BaseCost.InexactFloat64())
	_ = f.SetCellValue(summarySheet, "A9", "Total Cost")
	_ = f.SetCellValue(summarySheet, "B9", p.TotalCost.InexactFloat64())
	_ = f.SetCellValue(summarySheet, "A10", "Estimated Day Ratio")
	_ = f.SetCellValue(summarySheet, "B10", p.EstimatedDayRatio)

	_ = f.SetCellValue(seriesSheet, "A1", "Day")
	_ = f.SetCellValue(seriesSheet, "B1", "Cumulative (kWh)")
	_ = f.SetCellValue(seriesSheet, "C1", "Measured")
	for i, pt := range p.Series {
		row := i + 2
		_ = f.SetCellValue(seriesSheet, fmt.Sprintf("A%d", row), pt.Date.Format("2006-01-02"))
		_ = f.SetCellValue(seriesSheet, fmt.Sprintf("B%d", row), pt.Estimate)
		_ = f.SetCellValue(seriesSheet, fmt.Sprintf("C%d", row), pt.Measured)
	}

	return f.Write(w)
}

// WritePDF renders the projection as a single statement document
func WritePDF(w io.Writer, p *types.AccountProjection) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Power Cost Projection")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Account: %s", p.Account))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s",
		p.PeriodStart.Format("2006-01-02"), p.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(5)
	if !p.NextInvoice.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Next Invoice: %s", p.NextInvoice.Format("2006-01-02")))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Usage (kWh): %.1f", p.UsageKWh))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Energy Cost: %s", p.EnergyCost.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Base Cost: %s", p.BaseCost.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Cost: %s", p.TotalCost.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated Days: %.0f%%", p.EstimatedDayRatio*100))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Day", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Cumulative (kWh)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Measured", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for i, pt := range p.Series {
		if i == pdfSeriesCap {
			break
		}
		measured := "yes"
		if !pt.Measured {
			measured = "no"
		}
		pdf.CellFormat(40, 6, pt.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", pt.Estimate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, measured, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
