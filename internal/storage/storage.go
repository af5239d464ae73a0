// Package storage persists build runs and their corpus terms.
package storage

import (
	"context"

	"github.com/farmadados/farmacorpus/internal/models"
)

// Store defines run and term persistence operations.
type Store interface {
	// Run operations
	SaveRun(ctx context.Context, run *models.BuildRun, corpus *models.Corpus) error
	GetRun(ctx context.Context, id string) (*models.BuildRun, error)
	LatestRun(ctx context.Context) (*models.BuildRun, error)
	ListRuns(ctx context.Context, limit int) ([]*models.BuildRun, error)

	// Term operations
	TermNames(ctx context.Context, runID, term string) ([]string, error)
	ListTerms(ctx context.Context, runID, prefix string, limit int) ([]models.TermEntry, error)
	CountTerms(ctx context.Context, runID string) (int64, error)

	Close() error
}
