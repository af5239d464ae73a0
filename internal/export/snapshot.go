package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/preprocess"
)

// Snapshot is the cleaned dataset written next to the corpus. Columns
// carries the original header order; NameColumn and CompositionColumn
// are the canonical (lowercased) mapped headers. When Patterns is set,
// the extraction columns are appended after the originals.
type Snapshot struct {
	Columns           []string
	NameColumn        string
	CompositionColumn string
	Records           []models.CleanRecord
	Patterns          bool
}

// WriteSnapshot writes the snapshot in the given format, "xlsx" or "csv".
func WriteSnapshot(s *Snapshot, path, format string) error {
	switch format {
	case "xlsx":
		return writeSnapshotXLSX(s, path)
	case "csv":
		return writeSnapshotCSV(s, path)
	default:
		return fmt.Errorf("unsupported snapshot format %q (want xlsx or csv)", format)
	}
}

func (s *Snapshot) header() []string {
	cols := make([]string, 0, len(s.Columns)+4)
	for _, c := range s.Columns {
		cols = append(cols, preprocess.CanonicalColumn(c))
	}
	if s.Patterns {
		cols = append(cols, "dose", "form", "recipient", s.NameColumn+"_cleaned")
	}
	return cols
}

func (s *Snapshot) row(rec models.CleanRecord) []string {
	out := make([]string, 0, len(s.Columns)+4)
	for _, c := range s.Columns {
		switch canon := preprocess.CanonicalColumn(c); canon {
		case s.NameColumn:
			out = append(out, rec.ProductName)
		case s.CompositionColumn:
			out = append(out, rec.Composition)
		default:
			out = append(out, rec.Passthrough[canon])
		}
	}
	if s.Patterns {
		out = append(out, rec.Patterns.Dose, rec.Patterns.Form, rec.Patterns.Recipient, rec.Patterns.CleanedName)
	}
	return out
}

func writeSnapshotXLSX(s *Snapshot, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	_ = f.SetSheetName(f.GetSheetName(0), "Planilha1")
	sheet := f.GetSheetName(0)

	for i, h := range s.header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, rec := range s.Records {
		for c, v := range s.row(rec) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return f.SaveAs(path)
}

func writeSnapshotCSV(s *Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(s.header()); err != nil {
		return err
	}
	for _, rec := range s.Records {
		if err := w.Write(s.row(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
