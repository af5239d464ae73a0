package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/farmadados/farmacorpus/internal/models"
)

func readXLSX(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	name := pickSheet(f, sheet)
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", name, err)
	}
	return buildTable(rows), nil
}

// pickSheet returns the requested sheet when the workbook has it and
// the first sheet otherwise.
func pickSheet(f *excelize.File, want string) string {
	if want != "" {
		for _, s := range f.GetSheetList() {
			if s == want {
				return s
			}
		}
	}
	return f.GetSheetName(0)
}
