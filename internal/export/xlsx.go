package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	DefaultSheetName = "Dados Gerados"
	MinColumnWidth   = 15
	ColumnPadding    = 2

	// MaxDataRows leaves room for the header row.
	MaxDataRows = excelize.TotalRows - 1
	MaxColumns  = excelize.MaxColumns

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateNumFmt      = "dd/mm/yyyy hh:mm:ss"
	maxSheetNameLen = 31
)

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string { return xlsxContentType }

func (e *XLSXExporter) Extension() string { return domain.FormatXLSX }

// Export writes a single sheet: bold header row, then plain data rows.
func (e *XLSXExporter) Export(grid *domain.Grid, sheetLabel string) ([]byte, error) {
	if grid == nil || grid.RowCount() == 0 {
		return nil, errors.New("empty grid")
	}
	if len(grid.Headers()) > MaxColumns {
		return nil, fmt.Errorf("too many columns: %d", len(grid.Headers()))
	}
	if grid.RowCount() > excelize.TotalRows {
		return nil, fmt.Errorf("too many rows: %d", grid.RowCount())
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(sheetLabel)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	numFmt := dateNumFmt
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("date style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, fmt.Errorf("stream writer: %w", err)
	}

	for i, h := range headerStrings(grid) {
		if err := sw.SetColWidth(i+1, i+1, ColumnWidth(h)); err != nil {
			return nil, fmt.Errorf("column %d width: %w", i+1, err)
		}
	}

	for rowIdx, row := range grid.Rows {
		cells := make([]interface{}, len(row))
		for colIdx, v := range row {
			switch {
			case rowIdx == 0:
				cells[colIdx] = excelize.Cell{StyleID: boldStyle, Value: v}
			default:
				if t, ok := v.(time.Time); ok {
					cells[colIdx] = excelize.Cell{StyleID: dateStyle, Value: t}
				} else {
					cells[colIdx] = v
				}
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ColumnWidth floors narrow headers at MinColumnWidth.
func ColumnWidth(header string) float64 {
	return float64(max(MinColumnWidth, utf8.RuneCountInString(header)+ColumnPadding))
}

// SheetName makes label acceptable to Excel: no []:*?/\ and at most 31 characters.
func SheetName(label string) string {
	label = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, strings.TrimSpace(label))
	label = strings.Trim(label, "'")
	if utf8.RuneCountInString(label) > maxSheetNameLen {
		label = string([]rune(label)[:maxSheetNameLen])
	}
	if label == "" {
		return DefaultSheetName
	}
	return label
}
