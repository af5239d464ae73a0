package corpus

import "fmt"

// ConfigError reports a column-mapping mistake: a required source column
// missing from configuration or absent from the dataset header. It aborts
// the build before any row is processed.
type ConfigError struct {
	Column string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: column %q: %s", e.Column, e.Reason)
}
