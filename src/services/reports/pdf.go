package reports

import (
	"github.com/jung-kurt/gofpdf"
)

// renderPDF writes the payload as an A4 portrait document: title, timestamp,
// summary block, section blocks, then the records table.
func renderPDF(data *Data, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, data.Title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, "Generated at "+data.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	pdf.Ln(4)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	if len(data.Summary) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, "SUMMARY")
		pdf.Ln(7)
		for _, line := range data.Summary {
			pdf.SetFont("Arial", "", 10)
			pdf.Cell(55, 6, line.Label+":")
			pdf.SetFont("Arial", "B", 10)
			pdf.Cell(0, 6, line.Value)
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	for _, sec := range data.Sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, sec.Heading)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for _, line := range sec.Lines {
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	if len(data.Columns) > 0 {
		colWidth := 190.0 / float64(len(data.Columns))

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(40, 80, 140)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range data.Columns {
			pdf.CellFormat(colWidth, 8, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		fill := false
		pdf.SetFillColor(240, 240, 240)
		for _, row := range data.Records {
			for _, cell := range row {
				pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", fill, 0, "")
			}
			pdf.Ln(-1)
			fill = !fill
		}
	}

	return pdf.OutputFileAndClose(path)
}
