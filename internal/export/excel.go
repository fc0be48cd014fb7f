package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"matka-admin/internal/model"
)

const reportSheet = "Report"

// BuildXLSX serializes spec as a single-sheet workbook with a bold,
// filled header row. Cell values keep their native types so numeric
// columns stay sortable in the spreadsheet. An empty dataset returns
// ErrNoData.
func BuildXLSX(spec model.ExportSpec) ([]byte, error) {
	if len(spec.Data) == 0 {
		return nil, ErrNoData
	}

	columns := Columns(spec)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", reportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2980B9"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, col.Header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	if err := f.SetRowStyle(reportSheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for r, rec := range spec.Data {
		for c, col := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			val, ok := rec[col.DataKey]
			if !ok || val == nil {
				continue
			}
			if err := f.SetCellValue(reportSheet, cell, val); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
