// Package config is unitconv's configuration layer: a YAML file on disk,
// with environment-variable interpolation and CLI-flag overrides.
package config

// Config holds unitconv's persistent settings.
type Config struct {
	BaseDir string `yaml:"-"` // directory containing the config file, for resolving relative paths

	Output  OutputConfig  `yaml:"output"`
	REPL    REPLConfig    `yaml:"repl"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how converted quantities are rendered.
type OutputConfig struct {
	Precision int    `yaml:"precision"`  // decimal places in the printed magnitude (default 6)
	Locale    string `yaml:"locale"`     // BCP-47-ish locale tag for number/date formatting (default "en_US")
	Thousands bool   `yaml:"thousands"`  // group the integer part with thousands separators
	Legacy    bool   `yaml:"legacy"`     // echo the caller's unit string verbatim instead of the canonical form
}

// REPLConfig controls the interactive `unitconv repl` shell.
type REPLConfig struct {
	HistoryFile string `yaml:"history_file"` // path to the saved line-history file
	Prompt      string `yaml:"prompt"`       // override the default prompt text
}

// CatalogConfig holds unit-catalogue settings for the CLI commands that
// take a unit expression (convert, si, age, batch, repl).
type CatalogConfig struct {
	ExtraUnitsFile string `yaml:"extra_units_file"` // YAML file of friendly-word aliases for "_name" custom-unit tokens (see internal/aliases)
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
	Output string `yaml:"output"` // stderr, stdout, or a file path
	Quiet  bool   `yaml:"quiet"`  // suppress info-level logs (the batch run start/complete lines)
}

// Defaults returns a Config with sensible defaults, mirroring what a user
// who has never written a config file should get.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 6,
			Locale:    "en_US",
			Thousands: false,
			Legacy:    false,
		},
		REPL: REPLConfig{
			HistoryFile: "",
			Prompt:      ">> ",
		},
		Catalog: CatalogConfig{
			ExtraUnitsFile: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
			Quiet:  false,
		},
	}
}
