// Package quantity is the public surface of unitconv: it ties the parser,
// the unit/prefix tables, and the formatter together into the conversion
// engine — composite reduction, SI-base reduction, dimensional-compatibility
// validation, and canonical SI re-synthesis.
package quantity

import (
	"math"

	"github.com/sambeau/unitconv/internal/dims"
	"github.com/sambeau/unitconv/internal/prefixtab"
	"github.com/sambeau/unitconv/internal/qerrors"
	"github.com/sambeau/unitconv/internal/unitformat"
	"github.com/sambeau/unitconv/internal/unitparser"
	"github.com/sambeau/unitconv/internal/unittab"
)

// Quantity is an immutable magnitude-plus-dimensions value. Construction
// normalizes immediately to SI base form; conversion produces new values,
// never mutating the receiver.
type Quantity struct {
	magnitudeSI    float64
	dimensions     dims.Dims
	preferredUnits []unitparser.ParsedUnit
}

// Result is the exported shape callers observe from Get and Convert.
type Result struct {
	Magnitude float64
	Units     string
}

// composite is the (scale, dimensions, optional offset) triple produced by
// reducing a parsed-unit list.
type composite struct {
	scale     float64
	dims      dims.Dims
	hasOffset bool
	offset    float64
}

// New constructs a Quantity from a magnitude and a unit-expression string.
func New(magnitude float64, units string) (*Quantity, error) {
	parsed, err := unitparser.Parse(units)
	if err != nil {
		return nil, err
	}
	c, err := reduce(parsed)
	if err != nil {
		return nil, err
	}

	m := magnitude
	if c.hasOffset {
		m += c.offset
	}
	m *= c.scale

	d := c.dims
	if c.hasOffset {
		d = d.WithOffset(c.offset)
	}

	return &Quantity{magnitudeSI: m, dimensions: d, preferredUnits: parsed}, nil
}

// reduce folds a parsed-unit list into a single composite: accumulate scale
// and dimensions, and enforce the offset-solitary policy (an offset-bearing
// unit is only valid alone, at power 1).
func reduce(units []unitparser.ParsedUnit) (composite, error) {
	c := composite{scale: 1, dims: dims.Dimensionless}

	for _, u := range units {
		desc, ok := descriptorFor(u.Unit)
		if !ok {
			return composite{}, qerrors.New(qerrors.UnknownUnit, "reduce", u.Unit)
		}

		if desc.HasOffset {
			if len(units) != 1 || u.Power != 1 {
				return composite{}, qerrors.New(qerrors.InvalidOffsetUse, "reduce", u.Unit)
			}
			prefixFactor := 1.0
			if u.Prefix != "" {
				f, ok := prefixFactor1(u.Prefix)
				if !ok {
					return composite{}, qerrors.New(qerrors.UnknownUnit, "reduce", u.Prefix+u.Unit)
				}
				prefixFactor = f
			}
			c.hasOffset = true
			c.offset = desc.Offset * prefixFactor
		}

		prefixFactor := 1.0
		if u.Prefix != "" {
			f, ok := prefixFactor1(u.Prefix)
			if !ok {
				return composite{}, qerrors.New(qerrors.UnknownUnit, "reduce", u.Prefix+u.Unit)
			}
			prefixFactor = f
		}

		f := prefixFactor * desc.Scale
		c.scale *= math.Pow(f, float64(u.Power))

		scaledDims := desc.Dims.Scale(u.Power)
		combined, err := dims.Combine(c.dims, scaledDims, 1)
		if err != nil {
			return composite{}, err
		}
		c.dims = combined
	}

	return c, nil
}

func descriptorFor(unit string) (unittab.Descriptor, bool) {
	if len(unit) > 1 && unit[0] == '_' {
		return unittab.Custom(unit), true
	}
	return unittab.Lookup(unit)
}

func prefixFactor1(prefix string) (float64, bool) {
	if f, ok := prefixtab.LookupMetric(prefix); ok {
		return f, true
	}
	if f, ok := prefixtab.LookupBinary(prefix); ok {
		return f, true
	}
	return 0, false
}

// Convert reduces target to a composite, verifies the source and target
// dimensions match (ignoring offset), and transforms the magnitude.
func (q *Quantity) Convert(target string) (Result, error) {
	parsed, err := unitparser.Parse(target)
	if err != nil {
		return Result{}, err
	}
	c, err := reduce(parsed)
	if err != nil {
		return Result{}, err
	}

	if !q.dimensions.EqualDims(c.dims) {
		return Result{}, qerrors.New(qerrors.InvalidConversion, "convert", target)
	}

	m := q.magnitudeSI / c.scale
	if c.hasOffset {
		m -= c.offset
	}

	return Result{Magnitude: m, Units: unitformat.Format(parsed)}, nil
}

// ConvertLegacy behaves like Convert but returns the caller-supplied target
// string verbatim in Units instead of the canonical re-formatted form.
func (q *Quantity) ConvertLegacy(target string) (Result, error) {
	r, err := q.Convert(target)
	if err != nil {
		return Result{}, err
	}
	r.Units = target
	return r, nil
}

// Get returns the quantity expressed in its originally-constructed units.
func (q *Quantity) Get() (Result, error) {
	return q.Convert(unitformat.Format(q.preferredUnits))
}

// Dimensions exposes the quantity's dimension vector, for callers composing
// quantities outside this package (e.g. quantity arithmetic collaborators).
func (q *Quantity) Dimensions() dims.Dims { return q.dimensions }

// MagnitudeSI returns the magnitude in SI base form.
func (q *Quantity) MagnitudeSI() float64 { return q.magnitudeSI }
