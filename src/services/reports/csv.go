package reports

import (
	"encoding/csv"
	"os"
)

// renderCSV writes the fixed column header and one row per record. Title and
// summary blocks are PDF/Excel concerns; CSV stays machine-readable.
func renderCSV(data *Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(data.Columns); err != nil {
		return err
	}
	for _, rec := range data.Records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
