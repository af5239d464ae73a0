package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Dataset.Sheet == "" {
		cfg.Dataset.Sheet = "Planilha1"
	}
	if cfg.Dataset.Delimiter == "" {
		cfg.Dataset.Delimiter = ","
	}
	if cfg.Columns.Name == "" {
		cfg.Columns.Name = "nome"
	}
	if cfg.Columns.Composition == "" {
		cfg.Columns.Composition = "composição"
	}
	if cfg.Normalize.Language == "" {
		cfg.Normalize.Language = "pt"
	}
	if cfg.Synonyms.Source == "" {
		cfg.Synonyms.Source = "builtin"
	}
	if cfg.Output.Identifier == "" {
		cfg.Output.Identifier = "corpus"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./out"
	}
	if cfg.Output.SnapshotFormat == "" {
		cfg.Output.SnapshotFormat = "xlsx"
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "./out/farmacorpus.db"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Watch.DebounceMs == 0 {
		cfg.Watch.DebounceMs = 500
	}
}
