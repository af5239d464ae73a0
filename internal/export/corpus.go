// Package export writes build artifacts: the corpus JSON and the
// preprocessed dataset snapshot.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/farmadados/farmacorpus/internal/models"
)

// CorpusPath returns the corpus artifact path for an output identifier.
func CorpusPath(dir, identifier string) string {
	return filepath.Join(dir, identifier+"_corpus.json")
}

// SnapshotPath returns the preprocessed-dataset artifact path.
func SnapshotPath(dir, identifier, format string) string {
	return filepath.Join(dir, identifier+"_preprocessed."+format)
}

// WriteCorpus serializes the corpus to path as indented JSON. Keys keep
// corpus insertion order and non-ASCII text is written as UTF-8, so the
// same corpus always produces the same bytes.
func WriteCorpus(path string, c *models.Corpus) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ReadCorpus loads a corpus previously written by WriteCorpus.
func ReadCorpus(path string) (*models.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	c := models.NewCorpus()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return c, nil
}
