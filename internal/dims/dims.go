// Package dims implements the dimension-vector algebra: an integer-exponent
// vector over the eight basic physical dimensions plus up to four named
// custom slots, with equality and composition.
package dims

import (
	"sort"

	"github.com/sambeau/unitconv/internal/qerrors"
)

// Basic dimension indices, in a fixed order.
const (
	Mass = iota
	Length
	Time
	Temperature
	Current
	Substance
	Luminosity
	Information
	numBasic
)

// MaxCustom is the number of reserved custom-dimension slots.
const MaxCustom = 4

// Dims is a fixed-shape dimension vector: numBasic basic exponents plus up
// to MaxCustom named custom exponents, and an affine offset (used only for
// temperature scales such as degC/degF).
type Dims struct {
	exp        [numBasic + MaxCustom]int
	customName [MaxCustom]string
	numCustom  int
	Offset     float64
}

// Dimensionless is the zero-exponent, zero-offset singleton.
var Dimensionless = Dims{}

// Basic returns a Dims with a single basic exponent set, e.g. Basic(Mass, 1).
func Basic(index, power int) Dims {
	var d Dims
	d.exp[index] = power
	return d
}

// Custom returns a Dims carrying a single named custom dimension.
func Custom(name string, power int) Dims {
	var d Dims
	d.customName[0] = name
	d.exp[numBasic] = power
	d.numCustom = 1
	return d
}

// WithOffset returns a copy of d with the given affine offset.
func (d Dims) WithOffset(offset float64) Dims {
	d.Offset = offset
	return d
}

// Exponent returns the exponent at a basic dimension index.
func (d Dims) Exponent(index int) int { return d.exp[index] }

// CustomNames returns the sorted custom-dimension names currently in use.
func (d Dims) CustomNames() []string {
	return append([]string(nil), d.customName[:d.numCustom]...)
}

// CustomExponent returns the exponent for a named custom dimension, 0 if absent.
func (d Dims) CustomExponent(name string) int {
	for i := 0; i < d.numCustom; i++ {
		if d.customName[i] == name {
			return d.exp[numBasic+i]
		}
	}
	return 0
}

// Equal reports whether two Dims are element-wise equal, including offset.
func (d Dims) Equal(other Dims) bool {
	if d.Offset != other.Offset {
		return false
	}
	return d.equalIgnoringOffset(other)
}

// EqualDims reports dimension equality while ignoring any affine offset,
// used by the conversion engine to validate source/target compatibility.
func (d Dims) EqualDims(other Dims) bool {
	return d.equalIgnoringOffset(other)
}

func (d Dims) equalIgnoringOffset(other Dims) bool {
	for i := 0; i < numBasic; i++ {
		if d.exp[i] != other.exp[i] {
			return false
		}
	}
	an, bn := d.CustomNames(), other.CustomNames()
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] || d.CustomExponent(an[i]) != other.CustomExponent(bn[i]) {
			return false
		}
	}
	return true
}

// IsDimensionless reports whether all exponents and the offset are zero.
func (d Dims) IsDimensionless() bool {
	for i := 0; i < numBasic+MaxCustom; i++ {
		if d.exp[i] != 0 {
			return false
		}
	}
	return d.Offset == 0
}

// Scale multiplies every exponent (basic and custom) by power. Used when a
// unit with dimensions du appears raised to an integer power in a composite.
func (d Dims) Scale(power int) Dims {
	out := d
	for i := 0; i < numBasic+MaxCustom; i++ {
		out.exp[i] *= power
	}
	out.Offset = 0
	return out
}

// Combine composes lhs and rhsSign*rhs on the basic slots, and unions the
// custom dimensions (summing coexisting exponents, dropping any that reduce
// to zero). Offsets are never composed: the result is always offset 0,
// matching the policy that a composite unit never carries an affine offset.
func Combine(lhs, rhs Dims, rhsSign int) (Dims, error) {
	if rhsSign != 1 && rhsSign != -1 {
		return Dims{}, qerrors.New(qerrors.InvalidDimensions, "combine", "")
	}
	var out Dims
	for i := 0; i < numBasic; i++ {
		out.exp[i] = lhs.exp[i] + rhsSign*rhs.exp[i]
	}

	names := map[string]int{}
	for i := 0; i < lhs.numCustom; i++ {
		names[lhs.customName[i]] += lhs.exp[numBasic+i]
	}
	for i := 0; i < rhs.numCustom; i++ {
		names[rhs.customName[i]] += rhsSign * rhs.exp[numBasic+i]
	}

	var sorted []string
	for name, exp := range names {
		if exp != 0 {
			sorted = append(sorted, name)
		}
	}
	sort.Strings(sorted)
	if len(sorted) > MaxCustom {
		return Dims{}, qerrors.New(qerrors.InvalidDimensions, "combine", "")
	}
	for i, name := range sorted {
		out.customName[i] = name
		out.exp[numBasic+i] = names[name]
	}
	out.numCustom = len(sorted)
	return out, nil
}

// Validate checks the construction invariants: custom names sorted strictly
// ascending, no duplicates, and the slot count bound.
func Validate(d Dims) error {
	if d.numCustom > MaxCustom || d.numCustom < 0 {
		return qerrors.New(qerrors.InvalidDimensions, "validate", "")
	}
	for i := 1; i < d.numCustom; i++ {
		if d.customName[i] <= d.customName[i-1] {
			return qerrors.New(qerrors.InvalidDimensions, "validate", "")
		}
	}
	return nil
}
