package dims

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Dims
		want bool
	}{
		{"both dimensionless", Dimensionless, Dimensionless, true},
		{"same basic exponent", Basic(Mass, 1), Basic(Mass, 1), true},
		{"different basic exponent", Basic(Mass, 1), Basic(Mass, 2), false},
		{"different offset", Dimensionless.WithOffset(1), Dimensionless, false},
		{"same custom", Custom("pax", 1), Custom("pax", 1), true},
		{"different custom name", Custom("pax", 1), Custom("dir", 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualDimsIgnoresOffset(t *testing.T) {
	a := Basic(Temperature, 1).WithOffset(273.15)
	b := Basic(Temperature, 1)
	if !a.EqualDims(b) {
		t.Errorf("EqualDims should ignore offset")
	}
	if a.Equal(b) {
		t.Errorf("Equal should not ignore offset")
	}
}

func TestIsDimensionless(t *testing.T) {
	if !Dimensionless.IsDimensionless() {
		t.Errorf("Dimensionless should be dimensionless")
	}
	if Basic(Mass, 1).IsDimensionless() {
		t.Errorf("mass^1 should not be dimensionless")
	}
	if Dimensionless.WithOffset(1).IsDimensionless() {
		t.Errorf("a nonzero offset should not be dimensionless")
	}
}

func TestCombineBasic(t *testing.T) {
	mass := Basic(Mass, 1)
	length := Basic(Length, 1)
	combined, err := Combine(mass, length, 1)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if combined.Exponent(Mass) != 1 || combined.Exponent(Length) != 1 {
		t.Errorf("combined = %+v, want mass=1 length=1", combined)
	}

	// subtracting rhs
	back, err := Combine(combined, length, -1)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if !back.Equal(mass) {
		t.Errorf("back = %+v, want %+v", back, mass)
	}
}

func TestCombineCustomUnion(t *testing.T) {
	pax := Custom("pax", 1)
	dir := Custom("dir", -1)
	combined, err := Combine(pax, dir, 1)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if combined.CustomExponent("pax") != 1 || combined.CustomExponent("dir") != -1 {
		t.Errorf("combined custom exponents wrong: %+v", combined)
	}
	names := combined.CustomNames()
	if len(names) != 2 || names[0] != "dir" || names[1] != "pax" {
		t.Errorf("custom names not sorted ascending: %v", names)
	}
}

func TestCombineDropsZeroExponentCustom(t *testing.T) {
	pax := Custom("pax", 1)
	negPax := Custom("pax", -1)
	combined, err := Combine(pax, negPax, 1)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if len(combined.CustomNames()) != 0 {
		t.Errorf("expected custom dimension to be dropped once zero, got %v", combined.CustomNames())
	}
	if !combined.IsDimensionless() {
		t.Errorf("expected dimensionless result")
	}
}

func TestValidateRejectsUnsortedNames(t *testing.T) {
	var d Dims
	d.customName[0] = "pax"
	d.customName[1] = "dir"
	d.numCustom = 2
	if err := Validate(d); err == nil {
		t.Errorf("expected error for unsorted custom names")
	}
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	var d Dims
	d.customName[0] = "pax"
	d.customName[1] = "pax"
	d.numCustom = 2
	if err := Validate(d); err == nil {
		t.Errorf("expected error for duplicate custom names")
	}
}
