// Package csvdata loads the semicolon-delimited CSV data files into the
// typed record collections the core consumes.
//
// The dialect is ';'-delimited with a header row and optional quoting;
// every file carries a trailing free-text notes column that is ignored.
package csvdata

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"power-cost/core/calendar"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Data file names inside the data directory
const (
	MetersFile   = "meters.csv"
	ReadingsFile = "readings.csv"
	TariffsFile  = "tariffs.csv"
	InvoicesFile = "invoices.csv"
)

const dateLayout = "2006-01-02"

// LoadMeters reads the meter identity table:
// account;meter_number;offset;notes
func LoadMeters(dir string) ([]types.MeterAssignment, error) {
	rows, err := readRows(filepath.Join(dir, MetersFile), 4)
	if err != nil {
		return nil, err
	}
	out := make([]types.MeterAssignment, 0, len(rows))
	for i, row := range rows {
		offset, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, rowErr(MetersFile, i, "invalid offset", err)
		}
		out = append(out, types.MeterAssignment{
			Account: types.AccountLabel(row[0]),
			Meter:   types.MeterNumber(row[1]),
			Offset:  offset,
		})
	}
	return out, nil
}

// LoadReadings reads the raw meter readings:
// date;meter_number;value;notes
func LoadReadings(dir string) ([]types.ReadingRecord, error) {
	rows, err := readRows(filepath.Join(dir, ReadingsFile), 4)
	if err != nil {
		return nil, err
	}
	out := make([]types.ReadingRecord, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[0])
		if err != nil {
			return nil, rowErr(ReadingsFile, i, "invalid date", err)
		}
		value, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, rowErr(ReadingsFile, i, "invalid reading value", err)
		}
		out = append(out, types.ReadingRecord{
			Date:  date,
			Meter: types.MeterNumber(row[1]),
			Value: value,
		})
	}
	return out, nil
}

// LoadTariffs reads the price change records:
// date;meter_number;unit_price;base_price;vat_percent;notes
func LoadTariffs(dir string) ([]types.TariffRecord, error) {
	rows, err := readRows(filepath.Join(dir, TariffsFile), 6)
	if err != nil {
		return nil, err
	}
	out := make([]types.TariffRecord, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[0])
		if err != nil {
			return nil, rowErr(TariffsFile, i, "invalid date", err)
		}
		unit, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, rowErr(TariffsFile, i, "invalid unit price", err)
		}
		base, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, rowErr(TariffsFile, i, "invalid base price", err)
		}
		vat, err := decimal.NewFromString(row[4])
		if err != nil {
			return nil, rowErr(TariffsFile, i, "invalid VAT percent", err)
		}
		out = append(out, types.TariffRecord{
			Date:       date,
			Meter:      types.MeterNumber(row[1]),
			UnitPrice:  unit,
			BasePrice:  base,
			VATPercent: vat,
		})
	}
	return out, nil
}

// LoadInvoices reads the historical invoice dates:
// account;invoice_date;notes
func LoadInvoices(dir string) ([]types.InvoiceSeed, error) {
	rows, err := readRows(filepath.Join(dir, InvoicesFile), 3)
	if err != nil {
		return nil, err
	}
	out := make([]types.InvoiceSeed, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[1])
		if err != nil {
			return nil, rowErr(InvoicesFile, i, "invalid invoice date", err)
		}
		out = append(out, types.InvoiceSeed{
			Account: types.AccountLabel(row[0]),
			Date:    date,
		})
	}
	return out, nil
}

// readRows reads all data rows of a file, skipping the header row
func readRows(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Parsing("cannot open data file "+path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = fields
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Parsing("cannot parse "+path, err)
	}
	if len(rows) == 0 {
		return nil, errors.Parsing("missing header row in "+path, nil)
	}
	return rows[1:], nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return calendar.Normalize(t), nil
}

func rowErr(file string, row int, msg string, cause error) *errors.Error {
	// row is zero-based over data rows; +2 accounts for the header
	return errors.Parsing(msg, cause).
		WithContext("file", file).
		WithContext("line", row+2)
}
