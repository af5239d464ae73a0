package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Corpus maps normalized active-principle terms to the ordered set of
// product names that contain them. Keys keep insertion order; the names
// under a key are unique and keep first-seen order, so serialization is
// deterministic for a fixed input order.
type Corpus struct {
	entries *orderedmap.OrderedMap[string, []string]
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{entries: orderedmap.New[string, []string]()}
}

// Add appends name under term unless already present for that term.
// A new term is created at the end of the key order.
func (c *Corpus) Add(term, name string) {
	names, ok := c.entries.Get(term)
	if ok {
		if contains(names, name) {
			return
		}
		c.entries.Set(term, append(names, name))
		return
	}
	c.entries.Set(term, []string{name})
}

// Put registers term with a copy of names, replacing any existing entry.
func (c *Corpus) Put(term string, names []string) {
	c.entries.Set(term, append([]string(nil), names...))
}

// Merge appends each of names under term, preserving existing order and
// skipping names already present. Creates the term when absent.
func (c *Corpus) Merge(term string, names []string) {
	existing, ok := c.entries.Get(term)
	if !ok {
		c.Put(term, names)
		return
	}
	for _, n := range names {
		if !contains(existing, n) {
			existing = append(existing, n)
		}
	}
	c.entries.Set(term, existing)
}

// Has reports whether term is a key.
func (c *Corpus) Has(term string) bool {
	_, ok := c.entries.Get(term)
	return ok
}

// Names returns a copy of the product names under term, or nil when absent.
func (c *Corpus) Names(term string) []string {
	names, ok := c.entries.Get(term)
	if !ok {
		return nil
	}
	return append([]string(nil), names...)
}

// Keys returns all terms in insertion order.
func (c *Corpus) Keys() []string {
	keys := make([]string, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of terms.
func (c *Corpus) Len() int {
	return c.entries.Len()
}

// Walk visits every entry in insertion order. The names slice is the live
// backing slice and must not be modified by fn.
func (c *Corpus) Walk(fn func(term string, names []string)) {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON serializes the corpus as a JSON object with keys in
// insertion order.
func (c *Corpus) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.entries)
}

// UnmarshalJSON reads a JSON object, preserving key order.
func (c *Corpus) UnmarshalJSON(data []byte) error {
	if c.entries == nil {
		c.entries = orderedmap.New[string, []string]()
	}
	return json.Unmarshal(data, c.entries)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
