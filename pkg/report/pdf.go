package report

import (
	"fmt"
	"gmao/pkg/domain"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLineHeight = 6
	pdfMargin     = 20
)

// column widths in mm, A4 portrait leaves 170mm between margins
var (
	movementColumns  = []float64{50, 40, 40, 40} //nolint: gochecknoglobals
	checklistColumns = []float64{70, 20, 45, 35} //nolint: gochecknoglobals
)

type pdfRenderer struct{}

func (pdfRenderer) ContentType() string { return "application/pdf" }

func (pdfRenderer) Extension() string { return "pdf" }

// Render writes an A4 document. Pages break automatically when tables grow.
func (pdfRenderer) Render(w io.Writer, history *domain.SensorHistory) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sensor history "+history.SensorID.String(), true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, pdfLineHeight, tr("Sensor "+history.SensorID.String()))
	pdf.Ln(pdfLineHeight + 2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, pdfLineHeight, tr("Type: "+history.Type))
	pdf.Ln(pdfLineHeight)
	pdf.Cell(0, pdfLineHeight, tr("Subtype: "+history.Subtype))
	pdf.Ln(pdfLineHeight * 2)

	section(pdf, "Movements")
	header(pdf, movementColumns, "Chantier", "Departed", "Returned", "Comment")
	for _, m := range history.Movements {
		cells := []string{m.Chantier, formatTime(m.DepartedAt), formatTime(m.ReturnedAt), m.Comment}
		for i, c := range cells {
			pdf.CellFormat(movementColumns[i], pdfLineHeight, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(pdfLineHeight)

	checklistTable(pdf, tr, "Checklist BEFORE maintenance", history.Responses.Before)
	pdf.Ln(pdfLineHeight)
	checklistTable(pdf, tr, "Checklist AFTER maintenance", history.Responses.After)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not write pdf: %w", err)
	}

	return nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, pdfLineHeight, title)
	pdf.Ln(pdfLineHeight + 1)
}

func header(pdf *gofpdf.Fpdf, widths []float64, titles ...string) {
	pdf.SetFont("Helvetica", "B", 10)
	for i, t := range titles {
		pdf.CellFormat(widths[i], pdfLineHeight, t, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
}

// checklistTable prints the check marks with ZapfDingbats since the core
// Helvetica encoding has no glyph for them.
func checklistTable(pdf *gofpdf.Fpdf, tr func(string) string, title string, responses []domain.ResponseDetail) {
	section(pdf, title)
	header(pdf, checklistColumns, "Item", "Checked", "Technician", "Date")
	for _, r := range responses {
		pdf.CellFormat(checklistColumns[0], pdfLineHeight, tr(r.Label), "1", 0, "L", false, 0, "")

		glyph := "8" // ✘
		if r.IsChecked {
			glyph = "4" // ✔
		}
		pdf.SetFont("ZapfDingbats", "", 10)
		pdf.CellFormat(checklistColumns[1], pdfLineHeight, glyph, "1", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)

		pdf.CellFormat(checklistColumns[2], pdfLineHeight, tr(r.User.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(checklistColumns[3], pdfLineHeight, formatTime(r.CheckedAt), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}
