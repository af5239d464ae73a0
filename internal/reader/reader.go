// Package reader loads tabular datasets from disk into row records.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/farmadados/farmacorpus/internal/models"
)

// Options selects how a dataset file is read. Sheet applies to
// spreadsheets, Delimiter to CSV files. Zero values fall back to the
// first sheet and a comma.
type Options struct {
	Sheet     string
	Delimiter string
}

// Open reads the dataset at path and returns its rows. The format is
// chosen by file extension.
func Open(path string, opts Options) (*models.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readXLSX(path, opts.Sheet)
	case ".csv":
		return readCSV(path, opts.Delimiter)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .xlsx or .csv)", ext)
	}
}

// buildTable turns raw cell rows into a Table. The first row is the
// header; data rows shorter than the header are padded with empty
// cells, longer ones are truncated to the named columns.
func buildTable(rows [][]string) *models.Table {
	t := &models.Table{}
	if len(rows) == 0 {
		return t
	}
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		t.Columns = append(t.Columns, h)
	}
	for _, row := range rows[1:] {
		rec := make(models.RawRecord, len(t.Columns))
		for i, col := range t.Columns {
			if col == "" {
				continue
			}
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}
