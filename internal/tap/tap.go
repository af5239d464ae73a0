// Package tap merges corpus terms into text-analysis package templates,
// the JSON documents consumed by SPSS Modeler text-mining flows.
package tap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/farmadados/farmacorpus/internal/models"
)

// OutPath returns the updated template path for an output identifier.
func OutPath(dir, identifier string) string {
	return filepath.Join(dir, identifier+".tap")
}

// Update loads the template at templatePath, appends one term per corpus
// entry to its first library, and writes the result to outPath. Every
// field of the template that is not the term list passes through
// untouched; object keys are re-serialized in sorted order.
func Update(templatePath, outPath string, c *models.Corpus) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse template %s: %w", templatePath, err)
	}
	if err := appendTerms(doc, c); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// appendTerms adds the corpus entries to the first library's term list,
// creating the list when the template lacks one.
func appendTerms(doc map[string]any, c *models.Corpus) error {
	template, ok := doc["template"].(map[string]any)
	if !ok {
		return errors.New(`template has no "template" object`)
	}
	libraries, ok := template["libraries"].([]any)
	if !ok || len(libraries) == 0 {
		return errors.New("template has no libraries")
	}
	library, ok := libraries[0].(map[string]any)
	if !ok {
		return errors.New("template library is not an object")
	}

	terms, _ := library["terms"].([]any)
	c.Walk(func(term string, names []string) {
		terms = append(terms, newTerm(term, names))
	})
	library["terms"] = terms
	return nil
}

func newTerm(form string, synonyms []string) map[string]any {
	syns := make([]any, 0, len(synonyms))
	for _, s := range synonyms {
		if s == "" {
			continue
		}
		syns = append(syns, map[string]any{
			"form":      s,
			"match":     0,
			"typeid":    1,
			"inflected": true,
		})
	}
	return map[string]any{
		"form":             form,
		"synonyms":         map[string]any{"terms": syns},
		"typeid":           1,
		"inflected":        true,
		"isAddSingleTerms": 2,
	}
}
