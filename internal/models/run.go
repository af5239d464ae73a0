package models

import "time"

// BuildRun records one completed corpus build.
type BuildRun struct {
	ID                string    `json:"id" db:"id"`
	Dataset           string    `json:"dataset" db:"dataset"`
	DatasetChecksum   string    `json:"dataset_checksum" db:"dataset_checksum"`
	Identifier        string    `json:"identifier" db:"identifier"`
	Rows              int       `json:"rows" db:"rows"`
	Indexed           int       `json:"indexed" db:"indexed"`
	EmptyCompositions int       `json:"empty_compositions" db:"empty_compositions"`
	Terms             int       `json:"terms" db:"terms"`
	SynonymTerms      int       `json:"synonym_terms" db:"synonym_terms"`
	DurationMs        int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// TermEntry is one persisted corpus entry of a build run. Position is
// the zero-based insertion index of the term within its corpus.
type TermEntry struct {
	Term     string   `json:"term"`
	Names    []string `json:"names"`
	Position int      `json:"position"`
}
