package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
	"github.com/kaletesis/stoktakip-backend/internal/modules/report"
)

const sheetName = "Stok Raporu"

// Rows start below the merged title and the header row.
const (
	headerRowIndex = 3
	dataRowIndex   = 4
)

// WriteTable renders a report table into a styled workbook. Formatting
// only; the table content is taken as-is.
func WriteTable(t *report.Table, start, end string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D7E4BC"}},
		Border:    allBorders(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border:    allBorders(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	numberFormat := "#,##0.00"
	numberStyle, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       allBorders(),
		CustomNumFmt: &numberFormat,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	// Merged title row carrying the report window.
	lastCol, _ := excelize.ColumnNumberToName(len(t.Columns))
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, apperr.Internal(err)
	}
	title := t.Title
	if start != "" && end != "" {
		title = fmt.Sprintf("%s\n%s - %s", t.Title, start, end)
	}
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	for i, col := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRowIndex)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetRowHeight(sheetName, headerRowIndex, 25)

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len([]rune(col))
	}

	for rowIdx, row := range t.Rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, dataRowIndex+rowIdx)
			f.SetCellValue(sheetName, cell, value)
			switch value.(type) {
			case float64, int:
				f.SetCellStyle(sheetName, cell, cell, numberStyle)
			default:
				f.SetCellStyle(sheetName, cell, cell, textStyle)
			}
			if l := len([]rune(fmt.Sprint(value))); l > widths[colIdx] {
				widths[colIdx] = l
			}
		}
	}

	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, name, name, float64(w+2))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return buf.Bytes(), nil
}

func allBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
