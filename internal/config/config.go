// Package config provides configuration loading and structs for the farmacorpus pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Columns   ColumnsConfig   `yaml:"columns"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Synonyms  SynonymsConfig  `yaml:"synonyms"`
	Output    OutputConfig    `yaml:"output"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
	Watch     WatchConfig     `yaml:"watch"`
}

// DatasetConfig identifies the source table.
type DatasetConfig struct {
	Path      string `yaml:"path"`
	Sheet     string `yaml:"sheet"`     // xlsx only; empty means first sheet
	Delimiter string `yaml:"delimiter"` // csv only
}

// ColumnsConfig maps source columns onto the pipeline's two required fields.
type ColumnsConfig struct {
	Name        string `yaml:"name"`
	Composition string `yaml:"composition"`
}

// NormalizeConfig holds linguistic normalization settings.
type NormalizeConfig struct {
	Language        string `yaml:"language"`
	MissingValue    string `yaml:"missing_value"`
	ExtractPatterns bool   `yaml:"extract_patterns"`
}

// SynonymsConfig holds synonym expansion settings.
type SynonymsConfig struct {
	Expand bool   `yaml:"expand"`
	Source string `yaml:"source"` // builtin | file
	Path   string `yaml:"path"`   // synonyms file, required when source is file
}

// OutputConfig controls artifact naming and placement.
type OutputConfig struct {
	Identifier     string `yaml:"identifier"`
	Dir            string `yaml:"dir"`
	SnapshotFormat string `yaml:"snapshot_format"` // xlsx | csv
}

// StorageConfig holds the run-history database path.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// WatchConfig holds dataset watch settings.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// Load reads and parses the config file at path, applies defaults and
// environment overrides, and expands paths. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	configDir := filepath.Dir(path)
	cfg.Dataset.Path = expandPath(cfg.Dataset.Path, configDir)
	cfg.Output.Dir = expandPath(cfg.Output.Dir, configDir)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	if cfg.Synonyms.Path != "" {
		cfg.Synonyms.Path = expandPath(cfg.Synonyms.Path, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports the first configuration mistake found, if any.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if c.Columns.Name == "" {
		return fmt.Errorf("columns.name is required")
	}
	if c.Columns.Composition == "" {
		return fmt.Errorf("columns.composition is required")
	}
	if c.Normalize.Language == "" {
		return fmt.Errorf("normalize.language is required")
	}
	if c.Output.Identifier == "" {
		return fmt.Errorf("output.identifier is required")
	}
	switch c.Output.SnapshotFormat {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("output.snapshot_format must be xlsx or csv, got %q", c.Output.SnapshotFormat)
	}
	switch c.Synonyms.Source {
	case "builtin":
	case "file":
		if c.Synonyms.Path == "" {
			return fmt.Errorf("synonyms.path is required when synonyms.source is file")
		}
	default:
		return fmt.Errorf("synonyms.source must be builtin or file, got %q", c.Synonyms.Source)
	}
	return nil
}

// applyEnvOverrides loads .env if present and applies the recognized
// FARMACORPUS_* overrides on top of file values.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()

	cfg.Dataset.Path = getEnv("FARMACORPUS_DATASET", cfg.Dataset.Path)
	cfg.Output.Dir = getEnv("FARMACORPUS_OUTPUT_DIR", cfg.Output.Dir)
	cfg.Storage.DatabasePath = getEnv("FARMACORPUS_DB", cfg.Storage.DatabasePath)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// expandPath converts a path to absolute. Paths starting with "./" are relative
// to configDir; "~/" expands to the home directory; other relative paths are
// kept relative to the working directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	return path
}
