package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
dataset:
  path: "/data/products.xlsx"
columns:
  name: "produto"
  composition: "principio_ativo"
server:
  host: "127.0.0.1"
  port: 9000
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns.Name != "produto" || cfg.Columns.Composition != "principio_ativo" {
		t.Errorf("unexpected columns config: %+v", cfg.Columns)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
dataset:
  path: "./DATA/products.xlsx"
output:
  dir: "./out"
storage:
  database_path: "./out/farmacorpus.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	wantDataset := filepath.Join(dir, "DATA", "products.xlsx")
	if cfg.Dataset.Path != wantDataset {
		t.Errorf("dataset.path = %s, want %s", cfg.Dataset.Path, wantDataset)
	}
	wantDB := filepath.Join(dir, "out", "farmacorpus.db")
	if cfg.Storage.DatabasePath != wantDB {
		t.Errorf("database_path = %s, want %s", cfg.Storage.DatabasePath, wantDB)
	}
}

func TestLoad_envOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
dataset:
  path: "/data/products.xlsx"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FARMACORPUS_DATASET", "/override/products.csv")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dataset.Path != "/override/products.csv" {
		t.Errorf("dataset.path = %s, want env override", cfg.Dataset.Path)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Columns.Name != "nome" {
		t.Errorf("default name column: got %s", cfg.Columns.Name)
	}
	if cfg.Columns.Composition != "composição" {
		t.Errorf("default composition column: got %s", cfg.Columns.Composition)
	}
	if cfg.Normalize.Language != "pt" {
		t.Errorf("default language: got %s", cfg.Normalize.Language)
	}
	if cfg.Synonyms.Source != "builtin" {
		t.Errorf("default synonyms source: got %s", cfg.Synonyms.Source)
	}
	if cfg.Output.SnapshotFormat != "xlsx" {
		t.Errorf("default snapshot format: got %s", cfg.Output.SnapshotFormat)
	}
	if cfg.Dataset.Sheet != "Planilha1" {
		t.Errorf("default sheet: got %s", cfg.Dataset.Sheet)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("default server: %+v", cfg.Server)
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("default debounce: got %d", cfg.Watch.DebounceMs)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{Dataset: DatasetConfig{Path: "/data/p.xlsx"}}
		ApplyDefaults(cfg)
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Columns.Composition = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing composition column should fail validation")
	}

	cfg = base()
	cfg.Output.SnapshotFormat = "parquet"
	if err := cfg.Validate(); err == nil {
		t.Error("unsupported snapshot format should fail validation")
	}

	cfg = base()
	cfg.Synonyms.Source = "file"
	if err := cfg.Validate(); err == nil {
		t.Error("file source without path should fail validation")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := &Config{
		Dataset: DatasetConfig{Path: "/data/p.xlsx"},
		Server:  ServerConfig{Host: "localhost", Port: 9090},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("loaded port: got %d", loaded.Server.Port)
	}
}
