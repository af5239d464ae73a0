// Package preprocess turns raw dataset rows into cleaned records.
package preprocess

import (
	"strings"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/text"
)

// Preprocessor cleans one raw row at a time: extracts the configured name
// and composition columns, substitutes the placeholder for missing values,
// applies field cleanup, and carries the remaining columns as passthrough.
// It never errors; absent required columns are detected table-wide by the
// corpus builder before any row is processed.
type Preprocessor struct {
	nameCol     string
	compCol     string
	placeholder string
	extract     bool
}

// New returns a Preprocessor for the given column mapping. Column names
// are matched case-insensitively against dataset headers. When extract is
// true, dose/form/recipient patterns are pulled out of each product name.
func New(nameCol, compCol, placeholder string, extract bool) *Preprocessor {
	return &Preprocessor{
		nameCol:     CanonicalColumn(nameCol),
		compCol:     CanonicalColumn(compCol),
		placeholder: placeholder,
		extract:     extract,
	}
}

// NameColumn returns the canonical product-name column.
func (p *Preprocessor) NameColumn() string { return p.nameCol }

// CompositionColumn returns the canonical composition column.
func (p *Preprocessor) CompositionColumn() string { return p.compCol }

// Clean derives the CleanRecord for row. columns is the table header in
// source order; the RawRecord itself is never mutated.
func (p *Preprocessor) Clean(row models.RawRecord, columns []string) models.CleanRecord {
	rec := models.CleanRecord{}
	for _, col := range columns {
		raw := row[col]
		switch CanonicalColumn(col) {
		case p.nameCol:
			rec.ProductName, rec.MissingName = p.fieldValue(raw)
		case p.compCol:
			rec.Composition, rec.MissingComposition = p.fieldValue(raw)
		default:
			if rec.Passthrough == nil {
				rec.Passthrough = make(map[string]string)
			}
			rec.Passthrough[CanonicalColumn(col)] = text.Clean(raw)
		}
	}
	if p.extract && !rec.MissingName {
		rec.Patterns = ExtractPatterns(rec.ProductName)
	}
	return rec
}

// fieldValue applies field cleanup to raw; empty or missing cells yield
// the placeholder verbatim plus a missing marker.
func (p *Preprocessor) fieldValue(raw string) (string, bool) {
	cleaned := text.Clean(raw)
	if cleaned == "" {
		return p.placeholder, true
	}
	return cleaned, false
}

// HasColumn reports whether the header contains col (case-insensitive).
func HasColumn(columns []string, col string) bool {
	canon := CanonicalColumn(col)
	for _, c := range columns {
		if CanonicalColumn(c) == canon {
			return true
		}
	}
	return false
}

// CanonicalColumn lowercases and trims a header name so column matching is
// case-insensitive, the way the source spreadsheets vary their headers.
func CanonicalColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
