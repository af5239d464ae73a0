package synonym

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// KeyFunc aligns thesaurus keys with corpus keys. Production wiring passes
// the active normalizer so lookups by normalized term hit entries written
// in dictionary form; nil means identity.
type KeyFunc func(string) string

// StaticThesaurus is an in-memory term → synonyms table.
type StaticThesaurus struct {
	entries map[string][]string
}

// NewStaticThesaurus builds a thesaurus from entries, applying key to each
// term. Source terms are processed in sorted order so that when two of them
// collapse onto one key the merged synonym list is reproducible across runs.
func NewStaticThesaurus(entries map[string][]string, key KeyFunc) *StaticThesaurus {
	terms := make([]string, 0, len(entries))
	for term := range entries {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	t := &StaticThesaurus{entries: make(map[string][]string, len(entries))}
	for _, term := range terms {
		t.add(term, entries[term], key)
	}
	return t
}

// LoadThesaurusFile reads a YAML synonym file:
//
//	terms:
//	  - term: dipirona
//	    synonyms: [metamizol, dipyrone]
//
// Terms pass through key before storage.
func LoadThesaurusFile(path string, key KeyFunc) (*StaticThesaurus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file: %w", err)
	}
	var file struct {
		Terms []struct {
			Term     string   `yaml:"term"`
			Synonyms []string `yaml:"synonyms"`
		} `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file %s: %w", path, err)
	}

	t := &StaticThesaurus{entries: make(map[string][]string, len(file.Terms))}
	for _, entry := range file.Terms {
		t.add(entry.Term, entry.Synonyms, key)
	}
	return t, nil
}

// Related returns the synonyms stored for term. Callers must not modify
// the returned slice.
func (t *StaticThesaurus) Related(term string) []string {
	return t.entries[term]
}

// Len returns the number of distinct terms.
func (t *StaticThesaurus) Len() int {
	return len(t.entries)
}

func (t *StaticThesaurus) add(term string, syns []string, key KeyFunc) {
	if key != nil {
		term = key(term)
	}
	if term == "" {
		return
	}
	existing := t.entries[term]
	for _, s := range syns {
		if s == "" {
			continue
		}
		dup := false
		for _, e := range existing {
			if e == s {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, s)
		}
	}
	t.entries[term] = existing
}
