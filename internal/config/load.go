package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a file with ${VAR} environment interpolation,
// then layers CLI flag overrides on top. Search order for the file, when
// configPath is empty: UNITCONV_CONFIG env var, then ./unitconv.yaml, then
// ~/.config/unitconv/unitconv.yaml. A missing file anywhere in that search is
// not an error — Load falls back to Defaults().
func Load(configPath string, getenv func(string) string, overrides Overrides) (*Config, error) {
	cfg, _, err := LoadWithPath(configPath, getenv, overrides)
	return cfg, err
}

// Overrides carries CLI-flag values that take precedence over both the
// environment and the config file. A zero value for a field means "not set
// on the command line" — the file/default value is kept.
type Overrides struct {
	Precision *int
	Locale    string
	Legacy    bool
}

// LoadWithPath behaves like Load but also returns the resolved absolute
// config path (or "" if none was found and defaults were used).
func LoadWithPath(configPath string, getenv func(string) string, overrides Overrides) (*Config, string, error) {
	path, found := resolveConfigPath(configPath, getenv)

	cfg := Defaults()
	absPath := ""

	if found {
		var err error
		absPath, err = filepath.Abs(path)
		if err != nil {
			return nil, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg.BaseDir = filepath.Dir(absPath)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
		data = interpolateEnv(data, getenv)

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, "", fmt.Errorf("parse config: %w", err)
		}

		if cfg.Catalog.ExtraUnitsFile != "" && !filepath.IsAbs(cfg.Catalog.ExtraUnitsFile) {
			cfg.Catalog.ExtraUnitsFile = filepath.Join(cfg.BaseDir, cfg.Catalog.ExtraUnitsFile)
		}
		if cfg.REPL.HistoryFile != "" && !filepath.IsAbs(cfg.REPL.HistoryFile) {
			cfg.REPL.HistoryFile = filepath.Join(cfg.BaseDir, cfg.REPL.HistoryFile)
		}
	}

	applyOverrides(cfg, overrides)

	if err := Validate(cfg); err != nil {
		return nil, "", err
	}

	return cfg, absPath, nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.Precision != nil {
		cfg.Output.Precision = *o.Precision
	}
	if o.Locale != "" {
		cfg.Output.Locale = o.Locale
	}
	if o.Legacy {
		cfg.Output.Legacy = true
	}
}

// Validate checks the fully-merged configuration for errors.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Output.Precision < 0 || cfg.Output.Precision > 17 {
		errs = append(errs, fmt.Sprintf("invalid output.precision: %d (must be 0-17)", cfg.Output.Precision))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid logging.level: %s (must be debug, info, warn, or error)", cfg.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid logging.format: %s (must be json or text)", cfg.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// resolveConfigPath finds the config file to use. It never errors: a file
// that can't be found just means "use defaults" — unitconv is fully usable
// with no config file at all.
func resolveConfigPath(explicit string, getenv func(string) string) (string, bool) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, true
		}
		return "", false
	}

	if envPath := getenv("UNITCONV_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
	}

	if _, err := os.Stat("unitconv.yaml"); err == nil {
		return "unitconv.yaml", true
	}

	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "unitconv", "unitconv.yaml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath, true
		}
	}

	return "", false
}

// envPattern matches ${VAR} or ${VAR:-default}.
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		varName := string(parts[1])
		value := getenv(varName)
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}
