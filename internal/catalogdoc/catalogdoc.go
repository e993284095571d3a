// Package catalogdoc renders the unit and prefix catalogue as Markdown, and
// to HTML via goldmark, for `unitconv catalog --html`.
package catalogdoc

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sambeau/unitconv/internal/dims"
	"github.com/sambeau/unitconv/internal/prefixtab"
	"github.com/sambeau/unitconv/internal/unittab"
)

// Markdown renders the full unit and prefix catalogue as a GitHub-flavored
// Markdown document: one table of units, one of metric prefixes, one of
// binary prefixes.
func Markdown() string {
	var b strings.Builder

	b.WriteString("# unitconv catalogue\n\n")

	b.WriteString("## Units\n\n")
	b.WriteString("| Symbol | Scale (SI) | Dimensions | Prefixable | Binary-prefixable |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, sym := range sortedUnitSymbols() {
		d := unittab.Table[sym]
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			sym, formatScale(d), dimsSummary(d.Dims), checkmark(d.Prefixable), checkmark(d.BinaryPrefixable))
	}

	b.WriteString("\n## Metric prefixes\n\n")
	b.WriteString("| Symbol | Factor |\n|---|---|\n")
	for _, sym := range sortedPrefixKeys(prefixtab.Metric) {
		fmt.Fprintf(&b, "| %s | %g |\n", sym, prefixtab.Metric[sym])
	}

	b.WriteString("\n## Binary prefixes\n\n")
	b.WriteString("| Symbol | Factor |\n|---|---|\n")
	for _, sym := range sortedPrefixKeys(prefixtab.Binary) {
		fmt.Fprintf(&b, "| %s | %g |\n", sym, prefixtab.Binary[sym])
	}

	return b.String()
}

// HTML renders the catalogue to an HTML fragment via a
// GFM-extended goldmark pipeline.
func HTML() (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown()), &buf); err != nil {
		return "", fmt.Errorf("render catalogue to HTML: %w", err)
	}
	return buf.String(), nil
}

func sortedUnitSymbols() []string {
	syms := make([]string, 0, len(unittab.Table))
	for sym := range unittab.Table {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

func sortedPrefixKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatScale(d unittab.Descriptor) string {
	if d.HasOffset {
		return fmt.Sprintf("%g (offset %g)", d.Scale, d.Offset)
	}
	return fmt.Sprintf("%g", d.Scale)
}

var basicDimNames = []string{"mass", "length", "time", "temp", "current", "subst", "lumin", "info"}

func dimsSummary(d dims.Dims) string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	var parts []string
	for i, name := range basicDimNames {
		if e := d.Exponent(i); e != 0 {
			parts = append(parts, fmt.Sprintf("%s^%d", name, e))
		}
	}
	for _, name := range d.CustomNames() {
		if e := d.CustomExponent(name); e != 0 {
			parts = append(parts, fmt.Sprintf("_%s^%d", name, e))
		}
	}
	return strings.Join(parts, "⋅")
}

func checkmark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
