// Package cli provides output formatting for the farmacorpus CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/termindex"
	"github.com/farmadados/farmacorpus/pkg/utils"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteMatches writes term search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteMatches(w io.Writer, query string, matches []termindex.Match, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Query   string            `json:"query"`
			Count   int               `json:"count"`
			Matches []termindex.Match `json:"matches"`
		}{Query: query, Count: len(matches), Matches: matches})
	}
	writeMatchesText(w, query, matches)
	return nil
}

func writeMatchesText(w io.Writer, query string, matches []termindex.Match) {
	if len(matches) == 0 {
		fmt.Fprintf(w, "No terms matched %q\n", query)
		return
	}
	fmt.Fprintf(w, "Found %d term(s) for %q\n\n", len(matches), query)
	for i, m := range matches {
		fmt.Fprintf(w, "%2d. %s (score %.4f)\n", i+1, m.Term, m.Score)
		fmt.Fprintf(w, "    %s\n", utils.JoinTruncated(m.Names, 120))
	}
}

// WriteRun writes one build run to w in the given format.
func WriteRun(w io.Writer, run *models.BuildRun, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}
	fmt.Fprintf(w, "run_id:              %s\n", run.ID)
	fmt.Fprintf(w, "dataset:             %s\n", run.Dataset)
	if run.DatasetChecksum != "" {
		fmt.Fprintf(w, "dataset_checksum:    %s\n", run.DatasetChecksum)
	}
	fmt.Fprintf(w, "identifier:          %s\n", run.Identifier)
	fmt.Fprintf(w, "rows:                %d\n", run.Rows)
	fmt.Fprintf(w, "indexed:             %d   # rows that contributed a corpus entry\n", run.Indexed)
	fmt.Fprintf(w, "empty_compositions:  %d\n", run.EmptyCompositions)
	fmt.Fprintf(w, "terms:               %d   # corpus keys, synonym entries included\n", run.Terms)
	fmt.Fprintf(w, "synonym_terms:       %d\n", run.SynonymTerms)
	fmt.Fprintf(w, "duration_ms:         %d\n", run.DurationMs)
	fmt.Fprintf(w, "created_at:          %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
