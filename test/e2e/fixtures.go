// Package e2e provides end-to-end tests; this file writes dataset files in
// the formats the reader supports.
package e2e

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// DatasetHeader is the column header of generated dataset files. The name
// and composition columns match the default column mapping.
var DatasetHeader = []string{"EAN", "nome", "composição"}

// DatasetSheet is the sheet generated dataset spreadsheets carry, matching
// the default sheet name of the source spreadsheets.
const DatasetSheet = "Planilha1"

// WriteDatasetCSV writes rows as a comma-separated dataset file.
func WriteDatasetCSV(path string, rows []E2ERow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(DatasetHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.EAN, r.Name, r.Composition}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteDatasetXLSX writes rows as a spreadsheet with a single sheet named
// DatasetSheet.
func WriteDatasetXLSX(path string, rows []E2ERow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DatasetSheet); err != nil {
		return err
	}
	header := make([]interface{}, len(DatasetHeader))
	for i, h := range DatasetHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(DatasetSheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DatasetSheet, cell, &[]interface{}{r.EAN, r.Name, r.Composition}); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
