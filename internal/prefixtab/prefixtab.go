// Package prefixtab is the static prefix table: two disjoint classes, metric
// (single letter, decimal) and binary (two ASCII letters, power of
// two). The disjointness is load-bearing for the parser, which can try
// exact match, then 1-char prefix, then 2-char prefix without backtracking.
package prefixtab

// Entry is one prefix table row.
type Entry struct {
	Symbol string
	Factor float64
}

// Metric holds the standard SI decimal prefixes, q (1e-30) through Q
// (1e+30). There is no "da" (deca) — it is two characters and would collide
// with the binary class's two-character rule.
var Metric = map[string]float64{
	"q": 1e-30,
	"r": 1e-27,
	"y": 1e-24,
	"z": 1e-21,
	"a": 1e-18,
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"µ": 1e-6,
	"m": 1e-3,
	"c": 1e-2,
	"d": 1e-1,
	"h": 1e2,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
	"P": 1e15,
	"E": 1e18,
	"Z": 1e21,
	"Y": 1e24,
	"R": 1e27,
	"Q": 1e30,
}

// Binary holds the IEC binary prefixes, Ki (2^10) through Yi (2^80).
var Binary = map[string]float64{
	"Ki": 1024,
	"Mi": 1024 * 1024,
	"Gi": 1024 * 1024 * 1024,
	"Ti": 1024 * 1024 * 1024 * 1024,
	"Pi": 1024 * 1024 * 1024 * 1024 * 1024,
	"Ei": 1024 * 1024 * 1024 * 1024 * 1024 * 1024,
	"Zi": 1024 * 1024 * 1024 * 1024 * 1024 * 1024 * 1024,
	"Yi": 1024 * 1024 * 1024 * 1024 * 1024 * 1024 * 1024 * 1024,
}

// LookupMetric returns the factor for a single-character metric prefix.
func LookupMetric(symbol string) (float64, bool) {
	f, ok := Metric[symbol]
	return f, ok
}

// LookupBinary returns the factor for a two-character binary prefix.
func LookupBinary(symbol string) (float64, bool) {
	f, ok := Binary[symbol]
	return f, ok
}
