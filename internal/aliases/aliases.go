// Package aliases loads the CLI-only custom-unit alias file named by
// config.CatalogConfig.ExtraUnitsFile: a flat map of friendly words to
// existing "_name" custom-dimension tokens. It never introduces a new base
// unit or scale — aliasing is pure string substitution before parsing, so
// the static unit table in internal/unittab stays immutable at runtime.
package aliases

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map is a friendly-word -> "_name" token lookup.
type Map map[string]string

// Load reads a YAML file of the form:
//
//	passengers: _pax
//	riders: _pax
//
// A missing path is not an error: Load returns an empty Map, since
// ExtraUnitsFile is an optional convenience layer.
func Load(path string) (Map, error) {
	if path == "" {
		return Map{}, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Map{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read alias file %s: %w", path, err)
	}

	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}

	m := make(Map, len(raw))
	for word, token := range raw {
		if !strings.HasPrefix(token, "_") {
			return nil, fmt.Errorf("alias file %s: %q must map to a \"_name\" token, got %q", path, word, token)
		}
		m[word] = token
	}
	return m, nil
}

// Resolve substitutes any whole-word alias occurrences in a unit expression
// with their underlying "_name" token before parsing. Only exact
// whitespace-delimited word matches are substituted, so aliases never
// collide with prefix/unit lexing inside a compound expression like
// "passengers/h".
func (m Map) Resolve(expr string) string {
	if len(m) == 0 {
		return expr
	}
	fields := strings.Fields(expr)
	for i, f := range fields {
		if token, ok := m[f]; ok {
			fields[i] = token
		}
	}
	return strings.Join(fields, " ")
}
