package export

import (
	"fmt"
	"io"

	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Leads"

// WriteXLSX writes a workbook with a single "Leads" sheet
func WriteXLSX(w io.Writer, leads []*models.Lead) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := setRow(f, 1, Headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(xlsxSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, lead := range leads {
		if err := setRow(f, i+2, Row(lead)); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(Headers))
	if err := f.SetColWidth(xlsxSheet, "A", lastCol, 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
