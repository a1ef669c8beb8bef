package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Arial"

type column struct {
	title string
	width float64
}

func titles(columns []column) []string {
	result := make([]string, 0, len(columns))
	for _, c := range columns {
		result = append(result, c.title)
	}
	return result
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func rangeRef(colFrom, rowFrom, colTo, rowTo int) (string, error) {
	first, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return "", err
	}
	return first + ":" + last, nil
}

// writeHeader writes the title row at row 1, freezes it and enables the autofilter
func writeHeader(f *excelize.File, sheet string, columns []column) (int, error) {
	const row = 1
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return row, err
	}
	for idx, c := range columns {
		name, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, name, name, c.width); err != nil {
			return row, err
		}
		if err = writeColumn(f, sheet, idx+1, row, c.title); err != nil {
			return row, err
		}
	}
	ref, err := rangeRef(1, row, len(columns), row)
	if err != nil {
		return row, err
	}
	lastCell, err := excelize.CoordinatesToCellName(len(columns), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, "A1", lastCell, style); err != nil {
		return row, err
	}
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return row, err
	}
	if err = f.AutoFilter(sheet, ref, nil); err != nil {
		return row, err
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
	})
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}
