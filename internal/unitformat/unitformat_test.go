package unitformat

import (
	"testing"

	"github.com/sambeau/unitconv/internal/unitparser"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		units []unitparser.ParsedUnit
		want  string
	}{
		{"empty", nil, ""},
		{"single no power", []unitparser.ParsedUnit{{Unit: "m", Power: 1}}, "m"},
		{"single with power", []unitparser.ParsedUnit{{Unit: "m", Power: 2}}, "m^2"},
		{
			"numerator and denominator",
			[]unitparser.ParsedUnit{
				{Unit: "s", Power: 4}, {Unit: "A", Power: 2},
				{Prefix: "k", Unit: "g", Power: -1}, {Unit: "m", Power: -2},
			},
			"s^4⋅A^2/kg⋅m^2",
		},
		{
			"denominator only",
			[]unitparser.ParsedUnit{{Unit: "s", Power: -1}},
			"s^-1",
		},
		{
			"mass as s^2 N/m example",
			[]unitparser.ParsedUnit{
				{Unit: "s", Power: 2}, {Unit: "N", Power: 1}, {Unit: "m", Power: -1},
			},
			"s^2⋅N/m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.units); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRoundTripsThroughParser(t *testing.T) {
	parsed, err := unitparser.Parse("s^4⋅A^2 / kg^1⋅m^2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Format(parsed)
	want := "s^4⋅A^2/kg⋅m^2"
	if got != want {
		t.Errorf("Format(Parse(...)) = %q, want %q", got, want)
	}

	reparsed, err := unitparser.Parse(got)
	if err != nil {
		t.Fatalf("Parse(Format(...)): %v", err)
	}
	if len(reparsed) != len(parsed) {
		t.Fatalf("reparsed length mismatch: %+v vs %+v", reparsed, parsed)
	}
	for i := range parsed {
		if reparsed[i] != parsed[i] {
			t.Errorf("reparsed[%d] = %+v, want %+v", i, reparsed[i], parsed[i])
		}
	}
}
