package export

import (
	"fmt"
	"io"

	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	FileName    = "income_expense_data.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetIncomes  = "Incomes"
	SheetExpenses = "Expenses"
)

type column struct {
	header string
	width  float64
}

// XLSX writes incomes and expenses to two sheets of one workbook.
type XLSX struct{}

func NewXLSX() *XLSX {
	return &XLSX{}
}

func (x *XLSX) Export(w io.Writer, incomes, expenses []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	// новая книга создаётся с листом Sheet1
	if err := f.SetSheetName(f.GetSheetName(0), SheetIncomes); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetExpenses); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := writeSheet(f, SheetIncomes, "Type", incomes); err != nil {
		return err
	}
	if err := writeSheet(f, SheetExpenses, "Category", expenses); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet, codeHeader string, records []model.Record) error {
	columns := []column{
		{"ID", 15},
		{"Amount", 15},
		{codeHeader, 20},
		{"Date", 20},
		{"Note", 30},
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return fmt.Errorf("%s: set width: %w", sheet, err)
		}
		header[i] = c.header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s: header: %w", sheet, err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.ID, r.Amount.InexactFloat64(), string(r.Category), r.Date.String(), r.Note}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s: row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
