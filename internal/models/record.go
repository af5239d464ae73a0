// Package models defines core data structures for datasets, records, and the corpus.
package models

// RawRecord holds one input row as a column → raw cell value mapping.
// Column order is carried by the enclosing Table. Readers own RawRecords;
// the pipeline never mutates them.
type RawRecord map[string]string

// Value returns the raw cell for col and whether the column is present.
func (r RawRecord) Value(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Table is an in-memory tabular dataset: a header and one RawRecord per row.
type Table struct {
	Columns []string
	Rows    []RawRecord
}

// CleanRecord is a preprocessed row: the two mapped fields after field
// cleanup (lowercased, whitespace collapsed, placeholder substituted), the
// remaining columns as passthrough, and optional pattern-extraction fields.
type CleanRecord struct {
	ProductName string `json:"product_name"`
	Composition string `json:"composition"`

	// MissingComposition is set when the composition cell was absent or
	// empty before placeholder substitution. Such records never contribute
	// a corpus key.
	MissingComposition bool `json:"-"`

	// MissingName is the same marker for the product-name cell; rows
	// without a usable name stay in the snapshot but are not indexed.
	MissingName bool `json:"-"`

	// Passthrough holds the lightly-cleaned remaining columns, keyed by
	// lowercased header name.
	Passthrough map[string]string `json:"passthrough,omitempty"`

	// Patterns holds dose/form/recipient extraction results when enabled.
	Patterns PatternFields `json:"patterns"`
}

// PatternFields carries the tokens extracted from a product name and the
// name with those tokens removed.
type PatternFields struct {
	Dose        string `json:"dose,omitempty"`
	Form        string `json:"form,omitempty"`
	Recipient   string `json:"recipient,omitempty"`
	CleanedName string `json:"name_cleaned,omitempty"`
}
