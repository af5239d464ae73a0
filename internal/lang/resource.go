// Package lang provides the lemmatizer and stop-word resources backing text
// normalization, built on snowball stemmers and the bleve stop-word lists.
package lang

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/lang/pt"
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/portuguese"
)

// Resource bundles the per-language stemmer and stop-word table. Resources
// are read-only after construction and safe for concurrent use.
type Resource struct {
	code string
	stop analysis.TokenMap
	stem func(env *snowballstem.Env) bool
}

// ForLanguage returns the resource for a language code. Supported: pt
// (pt-br, portuguese) and en (english). Unknown codes and word-list load
// failures are fatal for the pipeline and reported as errors here, before
// any row is processed.
func ForLanguage(code string) (*Resource, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "pt", "pt-br", "pt_br", "portuguese":
		stop, err := loadStopWords(pt.PortugueseStopWords)
		if err != nil {
			return nil, fmt.Errorf("failed to load portuguese stop words: %w", err)
		}
		return &Resource{code: "pt", stop: stop, stem: portuguese.Stem}, nil
	case "en", "english":
		stop, err := loadStopWords(en.EnglishStopWords)
		if err != nil {
			return nil, fmt.Errorf("failed to load english stop words: %w", err)
		}
		return &Resource{code: "en", stop: stop, stem: english.Stem}, nil
	default:
		return nil, fmt.Errorf("unsupported language %q (supported: pt, en)", code)
	}
}

// Code returns the canonical language code.
func (r *Resource) Code() string {
	return r.code
}

// Lemma returns the stem of token. Tokens are expected lowercased; the stem
// of an empty token is empty.
func (r *Resource) Lemma(token string) string {
	if token == "" {
		return ""
	}
	env := snowballstem.NewEnv(token)
	r.stem(env)
	return env.Current()
}

// IsStopword reports whether token is in the language's stop-word list.
func (r *Resource) IsStopword(token string) bool {
	return r.stop[token]
}

func loadStopWords(words []byte) (analysis.TokenMap, error) {
	tm := analysis.NewTokenMap()
	if err := tm.LoadBytes(words); err != nil {
		return nil, err
	}
	return tm, nil
}
