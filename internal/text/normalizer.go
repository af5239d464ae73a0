package text

import (
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// Lexicon provides per-token lemmas and stop-word classification for one
// natural language. Implementations must be read-only and reentrant.
type Lexicon interface {
	Lemma(token string) string
	IsStopword(token string) bool
}

// Normalizer turns a raw string into its canonical normalized form:
// cleanup, tokenization on whitespace/punctuation boundaries, stop-word
// removal, lemmatization, and single-space rejoining in original token
// order. Normalization is a pure function of its input given a fixed
// lexicon.
type Normalizer struct {
	lexicon   Lexicon
	tokenizer analysis.Tokenizer
}

// NewNormalizer returns a Normalizer over lexicon.
func NewNormalizer(lexicon Lexicon) *Normalizer {
	return &Normalizer{
		lexicon:   lexicon,
		tokenizer: unicode.NewUnicodeTokenizer(),
	}
}

// Normalize returns the canonical form of text. An empty result is valid:
// it means every token was filtered out, and such compositions are dropped
// from the corpus while their rows stay in the preprocessed table.
func (n *Normalizer) Normalize(text string) string {
	cleaned := Clean(text)
	if cleaned == "" {
		return ""
	}

	stream := n.tokenizer.Tokenize([]byte(cleaned))
	lemmas := make([]string, 0, len(stream))
	for _, tok := range stream {
		term := string(tok.Term)
		if term == "" || n.lexicon.IsStopword(term) {
			continue
		}
		lemma := n.lexicon.Lemma(term)
		if lemma == "" {
			continue
		}
		lemmas = append(lemmas, lemma)
	}
	return strings.Join(lemmas, " ")
}
