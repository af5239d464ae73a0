// Package server provides the HTTP API over the built corpus.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/farmadados/farmacorpus/internal/config"
	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/storage"
	"github.com/farmadados/farmacorpus/internal/termindex"
	"github.com/farmadados/farmacorpus/internal/text"
)

// Server is the HTTP server for the corpus API.
type Server struct {
	store  storage.Store
	norm   *text.Normalizer
	cfg    *config.Config
	logger *zap.Logger
	server *http.Server

	mu    sync.RWMutex
	index *termindex.Index
	run   *models.BuildRun
}

// NewServer creates a server over an indexed corpus. idx must be
// non-nil; run may be nil when the database has no builds yet.
func NewServer(
	store storage.Store,
	idx *termindex.Index,
	run *models.BuildRun,
	norm *text.Normalizer,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		store:  store,
		index:  idx,
		run:    run,
		norm:   norm,
		cfg:    cfg,
		logger: logger,
	}
}

// SetCorpus swaps in a freshly built index and its run. Called after a
// rebuild in watch mode. The previous index is left to the collector;
// memory-only indexes hold no file handles.
func (s *Server) SetCorpus(idx *termindex.Index, run *models.BuildRun) {
	s.mu.Lock()
	s.index = idx
	s.run = run
	s.mu.Unlock()
}

func (s *Server) snapshot() (*termindex.Index, *models.BuildRun) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index, s.run
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/api/v1/terms", s.handleListTerms)
	r.Get("/api/v1/terms/{term}", s.handleGetTerm)
	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/runs", s.handleListRuns)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
