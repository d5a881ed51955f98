// Package hclconf loads account definitions from an HCL file.
//
// When an accounts.hcl file is present in the data directory it replaces
// meters.csv and invoices.csv as the source of meter identities,
// calibration offsets and historical invoice dates:
//
//	account "garage" {
//	  invoice_date = "2021-03-15"
//
//	  meter "1ESY1161979087" { offset = 0 }
//	  meter "1EMH0009124731" { offset = 14308.5 }
//	}
package hclconf

import (
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"power-cost/core/calendar"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

type accountsFile struct {
	Accounts []accountBlock `hcl:"account,block"`
}

type accountBlock struct {
	Label       string       `hcl:"label,label"`
	InvoiceDate string       `hcl:"invoice_date,optional"`
	Meters      []meterBlock `hcl:"meter,block"`
}

type meterBlock struct {
	Number string  `hcl:"number,label"`
	Offset float64 `hcl:"offset,optional"`
}

// LoadAccounts parses an account definition file into the meter identity
// table and the invoice anchor seeds. Accounts without an invoice_date
// yield no seed; the engine reports them as skipped.
func LoadAccounts(path string) ([]types.MeterAssignment, []types.InvoiceSeed, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, nil, errors.Parsing("cannot parse "+path, diags)
	}

	var parsed accountsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, nil, errors.Parsing("invalid account definitions in "+path, diags)
	}

	var assignments []types.MeterAssignment
	var seeds []types.InvoiceSeed
	for _, account := range parsed.Accounts {
		label := types.AccountLabel(account.Label)
		for _, meter := range account.Meters {
			assignments = append(assignments, types.MeterAssignment{
				Account: label,
				Meter:   types.MeterNumber(meter.Number),
				Offset:  meter.Offset,
			})
		}
		if account.InvoiceDate != "" {
			date, err := time.Parse("2006-01-02", account.InvoiceDate)
			if err != nil {
				return nil, nil, errors.Parsing("invalid invoice_date for account "+account.Label, err)
			}
			seeds = append(seeds, types.InvoiceSeed{
				Account: label,
				Date:    calendar.Normalize(date),
			})
		}
	}
	return assignments, seeds, nil
}
