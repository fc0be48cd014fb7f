package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"matka-admin/internal/filter"
	"matka-admin/internal/model"
)

const (
	pdfBottomMargin = 20.0
	pdfHeaderRowH   = 8.0
	pdfDataRowH     = 7.0
)

// BuildPDF renders spec as a landscape A4 tabular report: bold title,
// optional italic subtitle, a generated-at stamp, a gridded table with
// banded row shading, and a centered "Page X of Y" footer on every page.
// Missing values render as empty cells. An empty dataset returns
// ErrNoData.
func BuildPDF(spec model.ExportSpec, generatedAt time.Time) ([]byte, error) {
	if len(spec.Data) == 0 {
		return nil, ErrNoData
	}

	columns := Columns(spec)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(spec.Title, true)
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageW - left - right) / float64(len(columns))

	drawTableHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(41, 128, 185)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range columns {
			pdf.CellFormat(colWidth, pdfHeaderRowH, col.Header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, spec.Title, "", 1, "C", false, 0, "")
	if spec.Subtitle != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 7, spec.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format("02/01/2006 03:04 PM"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	drawTableHeader()

	for i, rec := range spec.Data {
		if pdf.GetY()+pdfDataRowH > pageH-pdfBottomMargin {
			pdf.AddPage()
			drawTableHeader()
		}
		banded := i%2 == 1
		pdf.SetFillColor(240, 244, 248)
		for _, col := range columns {
			pdf.CellFormat(colWidth, pdfDataRowH, filter.FieldString(rec, col.DataKey), "1", 0, "L", banded, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
