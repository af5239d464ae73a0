// Package main is the farmacorpus CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/farmadados/farmacorpus/internal/cli"
	"github.com/farmadados/farmacorpus/internal/config"
	"github.com/farmadados/farmacorpus/internal/corpus"
	"github.com/farmadados/farmacorpus/internal/export"
	"github.com/farmadados/farmacorpus/internal/lang"
	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/preprocess"
	"github.com/farmadados/farmacorpus/internal/reader"
	"github.com/farmadados/farmacorpus/internal/server"
	"github.com/farmadados/farmacorpus/internal/storage"
	"github.com/farmadados/farmacorpus/internal/synonym"
	"github.com/farmadados/farmacorpus/internal/tap"
	"github.com/farmadados/farmacorpus/internal/termindex"
	"github.com/farmadados/farmacorpus/internal/text"
	"github.com/farmadados/farmacorpus/internal/watcher"
	"github.com/farmadados/farmacorpus/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/farmacorpus/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists it
// is used, so that "farmacorpus build" from the project dir uses the project's
// config. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "build":
		runBuild()
	case "search":
		runSearch()
	case "serve":
		runServe()
	case "watch":
		runWatch()
	case "status":
		runStatus()
	case "tap":
		runTap()
	case "version", "--version", "-v":
		fmt.Printf("farmacorpus version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runBuild() {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	dataset := fs.String("dataset", "", "dataset path, xlsx or csv (overrides config)")
	sheet := fs.String("sheet", "", "xlsx sheet name (overrides config)")
	expand := fs.Bool("expand", false, "enable synonym expansion")
	outputDir := fs.String("output-dir", "", "artifact directory (overrides config)")
	identifier := fs.String("id", "", "output identifier (overrides config)")
	debug := fs.Bool("debug", false, "enable debug logging (per-row exclusions, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataset != "" {
		cfg.Dataset.Path = *dataset
	}
	if *sheet != "" {
		cfg.Dataset.Sheet = *sheet
	}
	if *expand {
		cfg.Synonyms.Expand = true
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *identifier != "" {
		cfg.Output.Identifier = *identifier
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	_, run, err := buildOnce(context.Background(), cfg, store, logger)
	if err != nil {
		logger.Fatal("Build failed", zap.Error(err))
	}

	fmt.Printf("Build complete (run %s)\n\n", run.ID)
	_ = cli.WriteRun(os.Stdout, run, cli.OutputText)
	fmt.Println()
	fmt.Printf("corpus:    %s\n", export.CorpusPath(cfg.Output.Dir, cfg.Output.Identifier))
	fmt.Printf("snapshot:  %s\n", export.SnapshotPath(cfg.Output.Dir, cfg.Output.Identifier, cfg.Output.SnapshotFormat))
}

// buildOnce runs the full pipeline: read the dataset, build the corpus,
// write the corpus and snapshot artifacts, persist the run.
func buildOnce(ctx context.Context, cfg *config.Config, store storage.Store, logger *zap.Logger) (*corpus.Result, *models.BuildRun, error) {
	table, err := reader.Open(cfg.Dataset.Path, reader.Options{
		Sheet:     cfg.Dataset.Sheet,
		Delimiter: cfg.Dataset.Delimiter,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read dataset: %w", err)
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Columns)),
	)

	checksum, err := reader.Checksum(cfg.Dataset.Path)
	if err != nil {
		logger.Warn("dataset checksum failed", zap.Error(err))
		checksum = ""
	}

	resource, err := lang.ForLanguage(cfg.Normalize.Language)
	if err != nil {
		return nil, nil, err
	}
	norm := text.NewNormalizer(resource)
	pre := preprocess.New(cfg.Columns.Name, cfg.Columns.Composition,
		cfg.Normalize.MissingValue, cfg.Normalize.ExtractPatterns)

	opts := []corpus.BuilderOption{corpus.WithLogger(logger)}
	if cfg.Synonyms.Expand {
		thesaurus, err := loadThesaurus(cfg, norm)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, corpus.WithExpander(synonym.NewExpander(thesaurus)))
	}

	result, err := corpus.NewBuilder(pre, norm, opts...).Build(table)
	if err != nil {
		return nil, nil, err
	}

	corpusPath := export.CorpusPath(cfg.Output.Dir, cfg.Output.Identifier)
	if err := export.WriteCorpus(corpusPath, result.Corpus); err != nil {
		return nil, nil, fmt.Errorf("write corpus: %w", err)
	}
	snap := &export.Snapshot{
		Columns:           result.Columns,
		NameColumn:        pre.NameColumn(),
		CompositionColumn: pre.CompositionColumn(),
		Records:           result.Records,
		Patterns:          cfg.Normalize.ExtractPatterns,
	}
	snapPath := export.SnapshotPath(cfg.Output.Dir, cfg.Output.Identifier, cfg.Output.SnapshotFormat)
	if err := export.WriteSnapshot(snap, snapPath, cfg.Output.SnapshotFormat); err != nil {
		return nil, nil, fmt.Errorf("write snapshot: %w", err)
	}

	run := &models.BuildRun{
		ID:                uuid.New().String(),
		Dataset:           cfg.Dataset.Path,
		DatasetChecksum:   checksum,
		Identifier:        cfg.Output.Identifier,
		Rows:              result.Stats.Rows,
		Indexed:           result.Stats.Indexed,
		EmptyCompositions: result.Stats.EmptyCompositions,
		Terms:             result.Corpus.Len(),
		SynonymTerms:      result.Stats.SynonymTerms,
		DurationMs:        result.Stats.Duration.Milliseconds(),
	}
	if err := store.SaveRun(ctx, run, result.Corpus); err != nil {
		return nil, nil, fmt.Errorf("save run: %w", err)
	}
	return result, run, nil
}

func loadThesaurus(cfg *config.Config, norm *text.Normalizer) (synonym.Thesaurus, error) {
	key := synonym.KeyFunc(norm.Normalize)
	if cfg.Synonyms.Source == "file" {
		return synonym.LoadThesaurusFile(cfg.Synonyms.Path, key)
	}
	return synonym.NewBuiltinThesaurus(key), nil
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument, so "farmacorpus search dipirona
// -limit 5" would otherwise leave -limit unparsed.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 10, "number of results")
	fuzzy := fs.Bool("fuzzy", false, "skip the exact pass and match with edit tolerance right away")
	jsonOut := fs.Bool("json", false, "structured JSON output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: farmacorpus search [flags] <query>\n\n")
		fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces; quoting is optional.\n")
		fmt.Fprintf(fs.Output(), "Searches terms and product names of the latest build.\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(searchArgsReorder(os.Args[2:]))

	query := buildSearchQuery(fs.Args())
	if query == "" {
		fs.Usage()
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	run, err := store.LatestRun(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "No build runs yet; run \"farmacorpus build\" first")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load latest run: %v\n", err)
		os.Exit(1)
	}
	idx, err := indexForRun(ctx, store, run.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to index corpus: %v\n", err)
		os.Exit(1)
	}
	defer idx.Close()

	var matches []termindex.Match
	if *fuzzy {
		matches, err = idx.SearchFuzzy(query, *limit)
	} else {
		matches, err = idx.Search(query, *limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	format := cli.OutputText
	if *jsonOut {
		format = cli.OutputJSON
	}
	if err := cli.WriteMatches(os.Stdout, query, matches, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	host := fs.String("host", "", "bind host (overrides config)")
	port := fs.Int("port", 0, "bind port (overrides config)")
	watchDataset := fs.Bool("watch", false, "rebuild and swap the served corpus when the dataset changes")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	resource, err := lang.ForLanguage(cfg.Normalize.Language)
	if err != nil {
		logger.Fatal("Failed to load language resource", zap.Error(err))
	}
	norm := text.NewNormalizer(resource)

	ctx := context.Background()
	idx, run, err := latestIndex(ctx, store)
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}
	if run == nil {
		logger.Warn("no build runs yet; serving an empty corpus")
	}

	srv := server.NewServer(store, idx, run, norm, cfg, logger)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	var watchSvc *watcher.Watcher
	if *watchDataset {
		if err := cfg.Validate(); err != nil {
			logger.Fatal("Invalid config", zap.Error(err))
		}
		var rebuildMu sync.Mutex
		onChange := func(path string) {
			rebuildMu.Lock()
			defer rebuildMu.Unlock()
			result, newRun, err := buildOnce(context.Background(), cfg, store, logger)
			if err != nil {
				logger.Warn("rebuild failed", zap.String("path", path), zap.Error(err))
				return
			}
			newIdx, err := termindex.NewIndex(result.Corpus)
			if err != nil {
				logger.Warn("reindex failed", zap.Error(err))
				return
			}
			srv.SetCorpus(newIdx, newRun)
			logger.Info("corpus reloaded",
				zap.String("run_id", newRun.ID),
				zap.Int("terms", result.Corpus.Len()),
			)
		}
		watchOpts := []watcher.WatcherOption{
			watcher.WithDebounce(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond),
		}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc = watcher.NewWatcher(cfg.Dataset.Path, onChange, watchOpts...)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		logger.Info("watching dataset", zap.String("path", cfg.Dataset.Path))
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	if watchSvc != nil {
		watchSvc.Stop()
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(stopCtx)
}

// latestIndex loads the latest run's corpus from storage and indexes it.
// A database without runs yields an empty index and a nil run.
func latestIndex(ctx context.Context, store storage.Store) (*termindex.Index, *models.BuildRun, error) {
	run, err := store.LatestRun(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		idx, err := termindex.NewIndex(models.NewCorpus())
		return idx, nil, err
	}
	if err != nil {
		return nil, nil, err
	}
	idx, err := indexForRun(ctx, store, run.ID)
	if err != nil {
		return nil, nil, err
	}
	return idx, run, nil
}

func indexForRun(ctx context.Context, store storage.Store, runID string) (*termindex.Index, error) {
	entries, err := store.ListTerms(ctx, runID, "", 0)
	if err != nil {
		return nil, err
	}
	c := models.NewCorpus()
	for _, e := range entries {
		c.Put(e.Term, e.Names)
	}
	return termindex.NewIndex(c)
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (file events, debounced triggers)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	if _, _, err := buildOnce(context.Background(), cfg, store, logger); err != nil {
		logger.Fatal("Initial build failed", zap.Error(err))
	}

	var rebuildMu sync.Mutex
	onChange := func(path string) {
		rebuildMu.Lock()
		defer rebuildMu.Unlock()
		if _, _, err := buildOnce(context.Background(), cfg, store, logger); err != nil {
			logger.Warn("rebuild failed", zap.String("path", path), zap.Error(err))
		}
	}
	watchOpts := []watcher.WatcherOption{
		watcher.WithDebounce(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond),
	}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	w := watcher.NewWatcher(cfg.Dataset.Path, onChange, watchOpts...)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := w.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	logger.Info("watching dataset", zap.String("path", cfg.Dataset.Path))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	w.Stop()
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jsonOut := fs.Bool("json", false, "structured JSON output")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	run, err := store.LatestRun(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No build runs yet")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load latest run: %v\n", err)
		os.Exit(1)
	}
	storedTerms, err := store.CountTerms(ctx, run.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to count terms: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		out := struct {
			Run            *models.BuildRun `json:"run"`
			StoredTerms    int64            `json:"stored_terms"`
			DiskUsageBytes *int64           `json:"disk_usage_bytes,omitempty"`
		}{Run: run, StoredTerms: storedTerms}
		if diskBytes, err := storage.DiskUsageBytes(cfg.Storage.DatabasePath, cfg.Output.Dir); err == nil {
			out.DiskUsageBytes = &diskBytes
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	_ = cli.WriteRun(os.Stdout, run, cli.OutputText)
	fmt.Printf("stored_terms:        %d\n", storedTerms)
	if diskBytes, err := storage.DiskUsageBytes(cfg.Storage.DatabasePath, cfg.Output.Dir); err == nil {
		fmt.Printf("disk_usage_bytes:    %d   # database + artifacts\n", diskBytes)
	}
}

func runTap() {
	fs := flag.NewFlagSet("tap", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	corpusPath := fs.String("corpus", "", "corpus JSON path (default: the configured corpus artifact)")
	templatePath := fs.String("template", "", "TAP template path (required)")
	outPath := fs.String("out", "", "output TAP path (default: <output dir>/<identifier>.tap)")
	_ = fs.Parse(os.Args[2:])

	if *templatePath == "" {
		fmt.Println("Usage: farmacorpus tap -template <template.tap> [-corpus <corpus.json>] [-out <out.tap>]")
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *corpusPath == "" {
		*corpusPath = export.CorpusPath(cfg.Output.Dir, cfg.Output.Identifier)
	}
	if *outPath == "" {
		*outPath = tap.OutPath(cfg.Output.Dir, cfg.Output.Identifier)
	}

	c, err := export.ReadCorpus(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read corpus: %v\n", err)
		os.Exit(1)
	}
	if err := tap.Update(*templatePath, *outPath, c); err != nil {
		fmt.Fprintf(os.Stderr, "TAP update failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("TAP written: %s (%d terms)\n", *outPath, c.Len())
}

func printUsage() {
	fmt.Println(`farmacorpus - Pharmaceutical corpus builder

Usage:
  farmacorpus build [flags]           Build the corpus from the dataset
  farmacorpus search [flags] <query>  Search terms of the latest build
  farmacorpus serve [flags]           Start the HTTP API server
  farmacorpus watch [flags]           Rebuild whenever the dataset changes
  farmacorpus status [flags]          Show the latest build run
  farmacorpus tap [flags]             Merge the corpus into a TAP template
  farmacorpus version                 Show version
  farmacorpus help                    Show this help

Build Flags:
  --config string      Config file path (default: /usr/local/etc/farmacorpus/config.yaml)
  --dataset string     Dataset path, xlsx or csv (overrides config)
  --sheet string       xlsx sheet name (overrides config)
  --expand             Enable synonym expansion
  --output-dir string  Artifact directory (overrides config)
  --id string          Output identifier, names the artifacts (overrides config)
  --debug              Enable debug logging

Search Flags:
  --config string    Config file path
  --limit int        Number of results (default: 10)
  --fuzzy            Skip the exact pass and match with edit tolerance right away
  --json             Structured JSON output

Serve Flags:
  --config string    Config file path
  --host string      Bind host (overrides config)
  --port int         Bind port (overrides config)
  --watch            Rebuild and swap the served corpus when the dataset changes
  --debug            Enable debug logging

Watch Flags:
  --config string    Config file path
  --debug            Enable debug logging (file events, debounced triggers)

Status Flags:
  --config string    Config file path
  --json             Structured JSON output

Tap Flags:
  --config string    Config file path
  --corpus string    Corpus JSON path (default: the configured corpus artifact)
  --template string  TAP template path (required)
  --out string       Output TAP path (default: <output dir>/<identifier>.tap)

Examples:
  farmacorpus build
  farmacorpus build --dataset DATA/eans.xlsx --id abcfarma --expand
  farmacorpus search dipirona sodica
  farmacorpus search --fuzzy --json novalgina
  farmacorpus serve --watch
  farmacorpus status --json
  farmacorpus tap --template medicamentos.tap`)
}
