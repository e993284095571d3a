// Package unitformat renders a []unitparser.ParsedUnit back to canonical
// string form: no spaces, '⋅' as the sub-unit separator, at most one '/',
// and no explicit "^1".
package unitformat

import (
	"strconv"
	"strings"

	"github.com/sambeau/unitconv/internal/unitparser"
)

// Format renders a parsed-unit list to its canonical string.
func Format(units []unitparser.ParsedUnit) string {
	var num, den []unitparser.ParsedUnit
	for _, u := range units {
		if u.Power > 0 {
			num = append(num, u)
		} else if u.Power < 0 {
			den = append(den, u)
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(num) > 0 && len(den) > 0:
		return joinSide(num, false) + "/" + joinSide(den, true)
	case len(num) > 0:
		return joinSide(num, false)
	default:
		// Denominator only: emit with the original (negative) powers explicit.
		return joinSideRaw(den)
	}
}

// joinSide renders one side of a numerator/denominator split. The exponent
// shown is always a bare positive magnitude (the "/" already carries the
// sign for the denominator side), and |power|==1 never gets a "^1".
func joinSide(units []unitparser.ParsedUnit, invertPower bool) string {
	var p Printer
	for i, u := range units {
		if i > 0 {
			p.write("⋅")
		}
		power := u.Power
		if invertPower {
			power = -power
		}
		p.write(u.Prefix)
		p.write(u.Unit)
		if power != 1 {
			p.write("^")
			p.write(strconv.Itoa(power))
		}
	}
	return p.String()
}

// joinSideRaw renders a denominator-only expression, where there is no "/"
// to carry the sign, so every exponent (including -1) is explicit.
func joinSideRaw(units []unitparser.ParsedUnit) string {
	var p Printer
	for i, u := range units {
		if i > 0 {
			p.write("⋅")
		}
		p.write(u.Prefix)
		p.write(u.Unit)
		p.write("^")
		p.write(strconv.Itoa(u.Power))
	}
	return p.String()
}

// Printer accumulates formatted output as a thin wrapper over
// strings.Builder rather than repeated string concatenation.
type Printer struct {
	sb strings.Builder
}

func (p *Printer) write(s string) { p.sb.WriteString(s) }

func (p *Printer) String() string { return p.sb.String() }
