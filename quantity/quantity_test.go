package quantity

import (
	"math"
	"testing"

	"github.com/sambeau/unitconv/internal/qerrors"
)

func approxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b)/math.Max(math.Abs(a), math.Abs(b)) < tol
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name          string
		magnitude     float64
		from, to      string
		wantMagnitude float64
		wantUnits     string
	}{
		{"degC to degF boiling", 100, "degC", "degF", 212, "degF"},
		{"degC to degF freezing", 0, "degC", "degF", 32, "degF"},
		{"g to s^2 N/m", 500, "g", "s^2 N / m", 0.5, "s^2⋅N/m"},
		{"kWh to MJ", 1, "kWh", "MJ", 3.6, "MJ"},
		{"GiB to B", 1, "GiB", "B", 1073741824, "B"},
		{"GB to B", 1, "GB", "B", 1000000000, "B"},
		{"percent to dimensionless", 100, "%", "", 1, ""},
		{"ppm to percent", 10000, "ppm", "%", 1, "%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := New(tt.magnitude, tt.from)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			res, err := q.Convert(tt.to)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if !approxEqual(res.Magnitude, tt.wantMagnitude, 1e-7) {
				t.Errorf("Magnitude = %v, want %v", res.Magnitude, tt.wantMagnitude)
			}
			if res.Units != tt.wantUnits {
				t.Errorf("Units = %q, want %q", res.Units, tt.wantUnits)
			}
		})
	}
}

func TestRoundTripInvariant(t *testing.T) {
	units := []string{"kg", "ft", "h", "N", "V", "mol", "Hz", "_pax"}
	for _, u := range units {
		t.Run(u, func(t *testing.T) {
			q, err := New(3.25, u)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			res, err := q.Convert(u)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if !approxEqual(res.Magnitude, 3.25, 1e-7) {
				t.Errorf("round-trip magnitude = %v, want 3.25", res.Magnitude)
			}
		})
	}
}

func TestConvertDimensionMismatch(t *testing.T) {
	cases := [][2]string{
		{"kg", "m"},
		{"day", "kg"},
		{"A", "s/C"},
		{"A", "C s"},
	}
	for _, c := range cases {
		t.Run(c[0]+"->"+c[1], func(t *testing.T) {
			q, err := New(1, c[0])
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			_, err = q.Convert(c[1])
			if err == nil {
				t.Fatalf("expected InvalidConversion, got nil")
			}
			qe, ok := err.(*qerrors.Error)
			if !ok || qe.Kind != qerrors.InvalidConversion {
				t.Errorf("err = %v, want InvalidConversion", err)
			}
		})
	}
}

func TestGetSIScenarios(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		units     string
		wantMag   float64
		wantUnits string
	}{
		{"km/h to m/s", 36, "km/h", 10, "m/s"},
		{"kg m/s^2 to N", 1234, "kg⋅m/s^2", 1234, "N"},
		{"Hz to s^-1", 10, "Hz", 10, "s^-1"},
		{"compound to V kg^3 K^4 mol b^2", 5, "V⋅kg^3⋅b^2⋅K^4⋅mol", 5, "V⋅kg^3⋅K^4⋅mol⋅b^2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := New(tt.magnitude, tt.units)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			res := q.GetSI()
			if !approxEqual(res.Magnitude, tt.wantMag, 1e-9) {
				t.Errorf("Magnitude = %v, want %v", res.Magnitude, tt.wantMag)
			}
			if res.Units != tt.wantUnits {
				t.Errorf("Units = %q, want %q", res.Units, tt.wantUnits)
			}
		})
	}
}

func TestGetSIIdentity(t *testing.T) {
	q, err := New(42, "m/s")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := q.GetSI()
	q2, err := New(first.Magnitude, first.Units)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	second := q2.GetSI()
	if !approxEqual(first.Magnitude, second.Magnitude, 1e-12) {
		t.Errorf("getSI not idempotent: %v vs %v", first.Magnitude, second.Magnitude)
	}
}

func TestInvalidOffsetUse(t *testing.T) {
	_, err := New(1, "degC⋅m")
	if err == nil {
		t.Fatalf("expected InvalidOffsetUse error")
	}
	qe, ok := err.(*qerrors.Error)
	if !ok || qe.Kind != qerrors.InvalidOffsetUse {
		t.Errorf("err = %v, want InvalidOffsetUse", err)
	}
}

func TestInvalidOffsetUseWithPower(t *testing.T) {
	_, err := New(1, "degC^2")
	if err == nil {
		t.Fatalf("expected InvalidOffsetUse error")
	}
	qe, ok := err.(*qerrors.Error)
	if !ok || qe.Kind != qerrors.InvalidOffsetUse {
		t.Errorf("err = %v, want InvalidOffsetUse", err)
	}
}

func TestLegacyAccessorPreservesCallerString(t *testing.T) {
	q, err := New(1, "kWh")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := q.ConvertLegacy("MJ^1")
	if err != nil {
		t.Fatalf("ConvertLegacy: %v", err)
	}
	if res.Units != "MJ^1" {
		t.Errorf("Units = %q, want caller-supplied verbatim %q", res.Units, "MJ^1")
	}
}
