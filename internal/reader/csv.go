package reader

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/farmadados/farmacorpus/internal/models"
)

func readCSV(path, delimiter string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiterRune(delimiter)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return buildTable(rows), nil
}

func delimiterRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ','
}
