package quantity

import (
	"github.com/sambeau/unitconv/internal/dims"
	"github.com/sambeau/unitconv/internal/unitformat"
	"github.com/sambeau/unitconv/internal/unitparser"
	"github.com/sambeau/unitconv/internal/unittab"
)

// preferredDerived is the fixed candidate order for canonical SI
// re-synthesis. The order matches physical-engineering convention and is
// what makes the greedy descent below deterministic.
var preferredDerived = []string{"N", "Pa", "J", "W", "C", "V", "F", "ohm", "S", "Wb", "T", "H"}

// basicExpansion lists, in base-unit-emission order, each basic dimension's
// canonical base-unit symbol. Mass is emitted as prefix "k" on "g" (the
// kilogram), never a literal "kg" table entry. Luminosity has no
// catalogued base unit and is never expanded.
var basicExpansion = []struct {
	index  int
	prefix string
	symbol string
}{
	{dims.Mass, "k", "g"},
	{dims.Length, "", "m"},
	{dims.Time, "", "s"},
	{dims.Temperature, "", "K"},
	{dims.Current, "", "A"},
	{dims.Substance, "", "mol"},
	{dims.Information, "", "b"},
}

// GetSI re-expresses the quantity's dimensions as a canonical, compact unit
// list: the fewest, most conventional named derived units, via a greedy
// descent through preferredDerived.
func (q *Quantity) GetSI() Result {
	if q.dimensions.IsDimensionless() {
		return Result{Magnitude: q.magnitudeSI, Units: ""}
	}

	remaining := q.dimensions
	var committed []unitparser.ParsedUnit

	for !allExponentsZero(remaining) {
		bestScore := complexityScore(remaining)
		bestFound := false
		var bestRemaining dims.Dims
		var bestSymbol string
		var bestPower int

		for _, sym := range preferredDerived {
			desc, ok := unittab.Lookup(sym)
			if !ok {
				continue
			}
			for _, power := range []int{1, -1} {
				sign := -1
				if power == -1 {
					sign = 1
				}
				candidate, err := dims.Combine(remaining, desc.Dims, sign)
				if err != nil {
					continue
				}
				score := complexityScore(candidate)
				if score < bestScore {
					bestScore = score
					bestRemaining = candidate
					bestSymbol = sym
					bestPower = power
					bestFound = true
				}
			}
		}

		if !bestFound {
			break
		}
		committed = append(committed, unitparser.ParsedUnit{Unit: bestSymbol, Power: bestPower})
		remaining = bestRemaining
	}

	for _, b := range basicExpansion {
		if e := remaining.Exponent(b.index); e != 0 {
			committed = append(committed, unitparser.ParsedUnit{Prefix: b.prefix, Unit: b.symbol, Power: e})
		}
	}
	for _, name := range remaining.CustomNames() {
		if e := remaining.CustomExponent(name); e != 0 {
			committed = append(committed, unitparser.ParsedUnit{Unit: "_" + name, Power: e})
		}
	}

	return Result{Magnitude: q.magnitudeSI, Units: unitformat.Format(mergeUnits(committed))}
}

func allExponentsZero(d dims.Dims) bool {
	for i := 0; i < 8; i++ {
		if d.Exponent(i) != 0 {
			return false
		}
	}
	for _, name := range d.CustomNames() {
		if d.CustomExponent(name) != 0 {
			return false
		}
	}
	return true
}

func complexityScore(d dims.Dims) int {
	score := 0
	for i := 0; i < 8; i++ {
		score += absInt(d.Exponent(i))
	}
	for _, name := range d.CustomNames() {
		score += absInt(d.CustomExponent(name))
	}
	return score
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// mergeUnits combines duplicate (prefix, unit) entries by summing powers,
// drops zero-exponent results, and preserves first-seen order.
func mergeUnits(units []unitparser.ParsedUnit) []unitparser.ParsedUnit {
	type key struct{ prefix, unit string }
	index := map[key]int{}
	var out []unitparser.ParsedUnit
	for _, u := range units {
		k := key{u.Prefix, u.Unit}
		if i, ok := index[k]; ok {
			out[i].Power += u.Power
			continue
		}
		index[k] = len(out)
		out = append(out, u)
	}

	var final []unitparser.ParsedUnit
	for _, u := range out {
		if u.Power != 0 {
			final = append(final, u)
		}
	}
	return final
}
