package documents

import (
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsxExtension   = "xlsx"
	defaultSheet    = "Sheet1"
	// built-in "#,##0.00"
	numFmtAmount = 4
)

// XLSXLedgerExporter writes ledger sheets as a one-sheet workbook.
type XLSXLedgerExporter struct{}

var _ interfaces.ILedgerExporter = (*XLSXLedgerExporter)(nil)

func NewXLSXLedgerExporter() *XLSXLedgerExporter {
	return &XLSXLedgerExporter{}
}

func (e *XLSXLedgerExporter) ContentType() string { return xlsxContentType }
func (e *XLSXLedgerExporter) Extension() string   { return xlsxExtension }

func (e *XLSXLedgerExporter) ExportLedger(ctx context.Context, sheet interfaces.LedgerSheet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(sheet.Headers) == 0 {
		return nil, fmt.Errorf("ledger sheet %q has no headers", sheet.Title)
	}

	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Title
	if name == "" {
		name = defaultSheet
	}
	if name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EBEBEB"}},
	})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, name, 1, toAny(sheet.Headers)); err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(sheet.Headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, r := range sheet.Rows {
		if err := writeRow(f, name, row, r); err != nil {
			return nil, err
		}
		row++
	}
	if len(sheet.Footer) > 0 {
		if err := writeRow(f, name, row, sheet.Footer); err != nil {
			return nil, err
		}
		footerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtAmount})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), footerStyle); err != nil {
			return nil, err
		}
	}

	// amounts are the only floats on the sheet
	for col, v := range firstNumericColumns(sheet) {
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if v && len(sheet.Rows) > 0 {
			if err := f.SetCellStyle(name, colName+"2", fmt.Sprintf("%s%d", colName, len(sheet.Rows)+1), amountStyle); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetColWidth(name, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write ledger workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func firstNumericColumns(sheet interfaces.LedgerSheet) []bool {
	numeric := make([]bool, len(sheet.Headers))
	if len(sheet.Rows) == 0 {
		return numeric
	}
	for i, v := range sheet.Rows[0] {
		if i >= len(numeric) {
			break
		}
		switch v.(type) {
		case float64, float32:
			numeric[i] = true
		}
	}
	return numeric
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
