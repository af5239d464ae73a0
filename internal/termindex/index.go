// Package termindex provides in-memory full-text search over corpus
// entries, plus did-you-mean suggestions for unknown terms.
package termindex

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	blevequery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/farmadados/farmacorpus/internal/models"
)

// Match is one search hit: a corpus term with its product names.
type Match struct {
	Term  string   `json:"term"`
	Names []string `json:"names"`
	Score float64  `json:"score"`
}

// Suggestion is a near-miss corpus term for an unknown query.
type Suggestion struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
	Names    int    `json:"names"`
}

type termDoc struct {
	Term  string `json:"term"`
	Names string `json:"names"`
}

// Index searches corpus entries by term or product name. The index
// lives in memory and is rebuilt from the corpus on startup.
type Index struct {
	index bleve.Index
	names map[string][]string
	terms []string
}

// NewIndex builds an in-memory index over all corpus entries. The term
// itself and every product name under it are searchable.
func NewIndex(c *models.Corpus) (*Index, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming): corpus
	// terms are already lemmatized, stemming again would distort them.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("term", textFieldMapping)
	docMapping.AddFieldMappingsAt("names", textFieldMapping)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("create term index: %w", err)
	}

	idx := &Index{
		index: index,
		names: make(map[string][]string, c.Len()),
	}
	batch := index.NewBatch()
	var indexErr error
	c.Walk(func(term string, names []string) {
		if indexErr != nil {
			return
		}
		idx.names[term] = append([]string(nil), names...)
		idx.terms = append(idx.terms, term)
		indexErr = batch.Index(term, termDoc{Term: term, Names: strings.Join(names, " ")})
	})
	if indexErr != nil {
		_ = index.Close()
		return nil, fmt.Errorf("index corpus: %w", indexErr)
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("index corpus: %w", err)
	}
	return idx, nil
}

// Search matches query against terms and product names. When the exact
// match query finds nothing, a fuzzy retry catches small typos.
func (idx *Index) Search(query string, limit int) ([]Match, error) {
	matches, err := idx.run(bleve.NewMatchQuery(query), limit)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return matches, nil
	}
	return idx.run(fuzzyQuery(query), limit)
}

// SearchFuzzy skips the exact pass and matches with edit tolerance
// right away.
func (idx *Index) SearchFuzzy(query string, limit int) ([]Match, error) {
	return idx.run(fuzzyQuery(query), limit)
}

func (idx *Index) run(q blevequery.Query, limit int) ([]Match, error) {
	req := bleve.NewSearchRequest(q)
	req.Size = limit
	results, err := idx.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search term index: %w", err)
	}
	matches := make([]Match, 0, len(results.Hits))
	for _, hit := range results.Hits {
		matches = append(matches, Match{
			Term:  hit.ID,
			Names: idx.names[hit.ID],
			Score: hit.Score,
		})
	}
	return matches, nil
}

// fuzzyQuery builds a disjunction of per-token fuzzy queries so any
// token may match with up to two edits.
func fuzzyQuery(query string) blevequery.Query {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return bleve.NewMatchQuery(query)
	}
	queries := make([]blevequery.Query, 0, len(tokens))
	for _, tok := range tokens {
		fq := bleve.NewFuzzyQuery(tok)
		fq.SetFuzziness(2)
		queries = append(queries, fq)
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewDisjunctionQuery(queries...)
}

// Suggest returns corpus terms within two edits of term, closest first.
// Ties break on product-name count (more first), then lexically.
func (idx *Index) Suggest(term string, limit int) []Suggestion {
	const maxDistance = 2

	runeLen := utf8.RuneCountInString(term)
	suggestions := make([]Suggestion, 0)
	for _, t := range idx.terms {
		if t == term {
			continue
		}
		if d := utf8.RuneCountInString(t) - runeLen; d > maxDistance || d < -maxDistance {
			continue
		}
		d := EditDistance(term, t)
		if d > maxDistance {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Term:     t,
			Distance: d,
			Names:    len(idx.names[t]),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		if suggestions[i].Names != suggestions[j].Names {
			return suggestions[i].Names > suggestions[j].Names
		}
		return suggestions[i].Term < suggestions[j].Term
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Has reports whether term is an indexed corpus key.
func (idx *Index) Has(term string) bool {
	_, ok := idx.names[term]
	return ok
}

// Names returns the product names under an indexed term.
func (idx *Index) Names(term string) []string {
	return idx.names[term]
}

// Len returns the number of indexed terms.
func (idx *Index) Len() int {
	return len(idx.terms)
}

// Close releases the underlying index.
func (idx *Index) Close() error {
	return idx.index.Close()
}

func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
