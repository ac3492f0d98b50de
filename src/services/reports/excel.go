package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// renderExcel writes the payload as a single-worksheet workbook: title row,
// timestamp row, summary rows, then a header row and the records.
func renderExcel(data *Data, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	row := 1
	setRow := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := setRow(data.Title); err != nil {
		return err
	}
	if err := setRow("Generated at " + data.GeneratedAt.Format("2006-01-02 15:04:05 MST")); err != nil {
		return err
	}
	row++ // blank row

	for _, line := range data.Summary {
		if err := setRow(line.Label, line.Value); err != nil {
			return err
		}
	}
	if len(data.Summary) > 0 {
		row++
	}

	for _, sec := range data.Sections {
		if err := setRow(sec.Heading); err != nil {
			return err
		}
		for _, line := range sec.Lines {
			if err := setRow("", line); err != nil {
				return err
			}
		}
	}
	if len(data.Sections) > 0 {
		row++
	}

	header := make([]interface{}, len(data.Columns))
	for i, col := range data.Columns {
		header[i] = col
	}
	if err := setRow(header...); err != nil {
		return err
	}
	for _, rec := range data.Records {
		values := make([]interface{}, len(rec))
		for i, v := range rec {
			values[i] = v
		}
		if err := setRow(values...); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
