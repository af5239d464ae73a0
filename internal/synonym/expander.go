// Package synonym provides corpus key enrichment from lexical resources.
package synonym

import "strings"

// Thesaurus looks up related words for a normalized term. Implementations
// are read-only and reentrant; a miss is an empty result, never an error.
type Thesaurus interface {
	Related(term string) []string
}

// Expander produces candidate synonym keys for a normalized term.
type Expander struct {
	source Thesaurus
}

// NewExpander returns an Expander over source. A nil source yields an
// expander that always returns nothing, matching the graceful-degradation
// contract for unavailable synonym resources.
func NewExpander(source Thesaurus) *Expander {
	return &Expander{source: source}
}

// Expand returns the synonyms of term in source order, lowercased, with
// the term itself and duplicates removed (case-insensitive). Unknown terms
// and unavailable sources yield an empty result.
func (e *Expander) Expand(term string) []string {
	if e == nil || e.source == nil {
		return nil
	}
	related := e.source.Related(term)
	if len(related) == 0 {
		return nil
	}

	seen := map[string]bool{strings.ToLower(term): true}
	out := make([]string, 0, len(related))
	for _, w := range related {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
