// Package unittab is the static unit catalogue: for every known unit
// symbol, its SI scale, dimensions, optional affine offset, and prefix
// eligibility flags.
package unittab

import "github.com/sambeau/unitconv/internal/dims"

// Descriptor is one unit table entry.
type Descriptor struct {
	Scale            float64
	Dims             dims.Dims
	Offset           float64 // zero-shift in the unit's own scaled domain
	HasOffset        bool
	Prefixable       bool
	BinaryPrefixable bool
}

func mass(p int) dims.Dims        { return dims.Basic(dims.Mass, p) }
func length(p int) dims.Dims      { return dims.Basic(dims.Length, p) }
func timeDim(p int) dims.Dims     { return dims.Basic(dims.Time, p) }
func temperature(p int) dims.Dims { return dims.Basic(dims.Temperature, p) }
func current(p int) dims.Dims     { return dims.Basic(dims.Current, p) }
func substance(p int) dims.Dims   { return dims.Basic(dims.Substance, p) }
func information(p int) dims.Dims { return dims.Basic(dims.Information, p) }

func combine2(a, b dims.Dims) dims.Dims {
	out, err := dims.Combine(a, b, 1)
	if err != nil {
		panic(err) // unreachable: static table entries are well-formed
	}
	return out
}

func combineMany(ds ...dims.Dims) dims.Dims {
	out := dims.Dimensionless
	for _, d := range ds {
		out = combine2(out, d)
	}
	return out
}

var (
	pressureDims = combineMany(mass(1), length(-1), timeDim(-2))
	forceDims    = combineMany(mass(1), length(1), timeDim(-2))
	energyDims   = combineMany(mass(1), length(2), timeDim(-2))
	powerDims    = combineMany(mass(1), length(2), timeDim(-3))
	chargeDims   = combineMany(current(1), timeDim(1))
	voltageDims  = combineMany(mass(1), length(2), timeDim(-3), current(-1))
	resistDims   = combineMany(mass(1), length(2), timeDim(-3), current(-2))
	capacDims    = combineMany(mass(-1), length(-2), timeDim(4), current(2))
	conductDims  = combineMany(mass(-1), length(-2), timeDim(3), current(2))
	fluxDims     = combineMany(mass(1), length(2), timeDim(-2), current(-1)) // Wb = V*s
	teslaDims    = combineMany(mass(1), timeDim(-2), current(-1))
	henryDims    = combineMany(mass(1), length(2), timeDim(-2), current(-2))
)

// Table is the static unit catalogue, keyed by exact unit symbol.
var Table = map[string]Descriptor{
	"%":   {Scale: 1e-2, Dims: dims.Dimensionless},
	"ppm": {Scale: 1e-6, Dims: dims.Dimensionless},

	"g":  {Scale: 1e-3, Dims: mass(1), Prefixable: true},
	"lb": {Scale: 4.5359237e-1, Dims: mass(1)},

	"m":  {Scale: 1, Dims: length(1), Prefixable: true},
	"in": {Scale: 2.54e-2, Dims: length(1)},
	"ft": {Scale: 3.048e-1, Dims: length(1)},
	"mi": {Scale: 1.609344e3, Dims: length(1)},

	"s":    {Scale: 1, Dims: timeDim(1), Prefixable: true},
	"min":  {Scale: 60, Dims: timeDim(1)},
	"h":    {Scale: 3600, Dims: timeDim(1)},
	"day":  {Scale: 86400, Dims: timeDim(1)},
	"week": {Scale: 604800, Dims: timeDim(1)},
	"yr":   {Scale: 3.1536e7, Dims: timeDim(1)},
	"ka":   {Scale: 3.1536e7 * 1e3, Dims: timeDim(1)},
	"Ma":   {Scale: 3.1536e7 * 1e6, Dims: timeDim(1)},
	"Ga":   {Scale: 3.1536e7 * 1e9, Dims: timeDim(1)},

	"K":      {Scale: 1, Dims: temperature(1), Prefixable: true},
	"deltaC": {Scale: 1, Dims: temperature(1)},
	"degC":   {Scale: 1, Dims: temperature(1), Offset: 273.15, HasOffset: true},
	"degF":   {Scale: 5.0 / 9.0, Dims: temperature(1), Offset: 459.67, HasOffset: true},

	"c": {Scale: 299792458, Dims: combineMany(length(1), timeDim(-1))},

	"Pa":  {Scale: 1, Dims: pressureDims, Prefixable: true},
	"psi": {Scale: 6894.75729316836, Dims: pressureDims},
	"atm": {Scale: 101325, Dims: pressureDims},

	"N": {Scale: 1, Dims: forceDims, Prefixable: true},

	"J":   {Scale: 1, Dims: energyDims, Prefixable: true},
	"eV":  {Scale: 1.602176634e-19, Dims: energyDims, Prefixable: true},
	"BTU": {Scale: 1055.05585, Dims: energyDims},
	"Wh":  {Scale: 3600, Dims: energyDims, Prefixable: true},

	"W":  {Scale: 1, Dims: powerDims, Prefixable: true},
	"HP": {Scale: 745.69987158227, Dims: powerDims},

	"L":  {Scale: 1e-3, Dims: length(3), Prefixable: true},
	"ha": {Scale: 1e4, Dims: length(2)},

	"b": {Scale: 1, Dims: information(1), Prefixable: true, BinaryPrefixable: true},
	"B": {Scale: 8, Dims: information(1), Prefixable: true, BinaryPrefixable: true},

	"A":  {Scale: 1, Dims: current(1), Prefixable: true},
	"C":  {Scale: 1, Dims: chargeDims, Prefixable: true},
	"Ah": {Scale: 3600, Dims: chargeDims, Prefixable: true},

	"V":   {Scale: 1, Dims: voltageDims, Prefixable: true},
	"ohm": {Scale: 1, Dims: resistDims},
	"F":   {Scale: 1, Dims: capacDims, Prefixable: true},
	"H":   {Scale: 1, Dims: henryDims, Prefixable: true},
	"S":   {Scale: 1, Dims: conductDims, Prefixable: true},
	"Wb":  {Scale: 1, Dims: fluxDims, Prefixable: true},
	"T":   {Scale: 1, Dims: teslaDims, Prefixable: true},

	"mol": {Scale: 1, Dims: substance(1)},
	"M":   {Scale: 1000, Dims: combineMany(substance(1), length(-3))},

	"Hz": {Scale: 1, Dims: timeDim(-1), Prefixable: true},

	"pphpd": {
		Scale: 1.0 / 3600.0,
		Dims: combineMany(
			timeDim(-1),
			dims.Custom("dir", -1),
			dims.Custom("pax", 1),
		),
	},
}

// Lookup returns the descriptor for an exact unit symbol.
func Lookup(symbol string) (Descriptor, bool) {
	d, ok := Table[symbol]
	return d, ok
}

// Custom synthesizes a descriptor for a "_name" token: scale 1, exponent 1
// in a custom dimension named by the token's tail (the part after "_").
func Custom(token string) Descriptor {
	return Descriptor{Scale: 1, Dims: dims.Custom(token[1:], 1)}
}
