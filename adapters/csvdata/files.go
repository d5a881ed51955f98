package csvdata

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"power-cost/internal/errors"
)

// headers lists every data file with its header row
var headers = map[string][]string{
	MetersFile:   {"account", "meter_number", "offset", "notes"},
	ReadingsFile: {"date", "meter_number", "value", "notes"},
	TariffsFile:  {"date", "meter_number", "unit_price", "base_price", "vat_percent", "notes"},
	InvoicesFile: {"account", "invoice_date", "notes"},
}

// InitFiles creates the data directory and any missing data file with its
// header row. Existing files are left untouched.
func InitFiles(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.TypeConfig, "cannot create data directory", err)
	}
	for name, header := range headers {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeHeader(path, header); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(path string, header []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.TypeConfig, "cannot create "+path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return errors.Internal("cannot write header for "+path, err)
	}
	w.Flush()
	return w.Error()
}
