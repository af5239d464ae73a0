// Package corpus assembles the active-principle corpus from a tabular
// dataset: one pass of row preprocessing and base indexing, plus an
// optional synonym-enrichment pass.
package corpus

import (
	"time"

	"go.uber.org/zap"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/preprocess"
	"github.com/farmadados/farmacorpus/internal/synonym"
	"github.com/farmadados/farmacorpus/internal/text"
)

// Stats aggregates per-build counters. EmptyCompositions counts rows whose
// composition was missing or normalized to empty; such rows stay in the
// preprocessed output but never reach the corpus.
type Stats struct {
	Rows              int
	Indexed           int
	EmptyCompositions int
	MissingNames      int
	BaseTerms         int
	SynonymTerms      int
	Duration          time.Duration
}

// Result is the outcome of one build: the corpus, every preprocessed
// record in input order, the source column order for snapshot writers,
// and the counters.
type Result struct {
	Corpus  *models.Corpus
	Records []models.CleanRecord
	Columns []string
	Stats   Stats
}

// Builder orchestrates preprocessing, normalization, and aggregation.
type Builder struct {
	pre      *preprocess.Preprocessor
	norm     *text.Normalizer
	expander *synonym.Expander
	logger   *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithExpander enables the synonym-enrichment pass.
func WithExpander(e *synonym.Expander) BuilderOption {
	return func(b *Builder) {
		b.expander = e
	}
}

// NewBuilder returns a Builder over the given preprocessor and normalizer.
func NewBuilder(pre *preprocess.Preprocessor, norm *text.Normalizer, opts ...BuilderOption) *Builder {
	b := &Builder{pre: pre, norm: norm, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the pipeline over table. The column mapping is validated
// against the header before any row is processed; a missing required
// column aborts the whole build with a ConfigError. Row order determines
// record order and corpus key insertion order.
func (b *Builder) Build(table *models.Table) (*Result, error) {
	start := time.Now()
	if err := b.checkColumns(table.Columns); err != nil {
		return nil, err
	}

	result := &Result{
		Corpus:  models.NewCorpus(),
		Records: make([]models.CleanRecord, 0, len(table.Rows)),
		Columns: append([]string(nil), table.Columns...),
	}

	for _, row := range table.Rows {
		rec := b.pre.Clean(row, table.Columns)
		result.Records = append(result.Records, rec)
		result.Stats.Rows++

		if rec.MissingName {
			result.Stats.MissingNames++
			b.logger.Debug("row without product name excluded from corpus")
			continue
		}
		if rec.MissingComposition {
			result.Stats.EmptyCompositions++
			b.logger.Debug("row without composition excluded from corpus",
				zap.String("product", rec.ProductName))
			continue
		}
		term := b.norm.Normalize(rec.Composition)
		if term == "" {
			result.Stats.EmptyCompositions++
			b.logger.Debug("composition normalized to empty",
				zap.String("product", rec.ProductName),
				zap.String("composition", rec.Composition))
			continue
		}
		result.Corpus.Add(term, rec.ProductName)
		result.Stats.Indexed++
	}
	result.Stats.BaseTerms = result.Corpus.Len()

	if b.expander != nil {
		b.enrich(result)
	}
	result.Stats.SynonymTerms = result.Corpus.Len() - result.Stats.BaseTerms
	result.Stats.Duration = time.Since(start)

	b.logger.Info("corpus build complete",
		zap.Int("rows", result.Stats.Rows),
		zap.Int("indexed", result.Stats.Indexed),
		zap.Int("empty_compositions", result.Stats.EmptyCompositions),
		zap.Int("terms", result.Corpus.Len()),
		zap.Int("synonym_terms", result.Stats.SynonymTerms),
		zap.Duration("duration", result.Stats.Duration))
	return result, nil
}

// enrich adds synonym-derived keys for every base key. Synonyms pass
// through the normalizer so every corpus key stays a fixed point of
// normalization; the copied name list is taken at the moment of merge.
func (b *Builder) enrich(result *Result) {
	for _, term := range result.Corpus.Keys() {
		for _, syn := range b.expander.Expand(term) {
			key := b.norm.Normalize(syn)
			if key == "" || key == term {
				continue
			}
			names := result.Corpus.Names(term)
			if result.Corpus.Has(key) {
				result.Corpus.Merge(key, names)
			} else {
				result.Corpus.Put(key, names)
			}
		}
	}
}

func (b *Builder) checkColumns(columns []string) error {
	nameCol := b.pre.NameColumn()
	compCol := b.pre.CompositionColumn()
	if nameCol == "" {
		return &ConfigError{Column: "name", Reason: "no product-name column configured"}
	}
	if compCol == "" {
		return &ConfigError{Column: "composition", Reason: "no composition column configured"}
	}
	if !preprocess.HasColumn(columns, nameCol) {
		return &ConfigError{Column: nameCol, Reason: "not found in dataset header"}
	}
	if !preprocess.HasColumn(columns, compCol) {
		return &ConfigError{Column: compCol, Reason: "not found in dataset header"}
	}
	return nil
}
