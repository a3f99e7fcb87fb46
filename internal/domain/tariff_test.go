package domain

import "testing"

func TestParseVehicleClass(t *testing.T) {
	tests := []struct {
		in      string
		want    VehicleClass
		wantErr bool
	}{
		{"standard", ClassStandard, false},
		{"premium", ClassPremium, false},
		{" Premium ", ClassPremium, false},
		{"STANDARD", ClassStandard, false},
		{"", "", true},
		{"luxury", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVehicleClass(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVehicleClass(%q) expected error", tt.in)
			} else if !IsValidation(err) {
				t.Errorf("ParseVehicleClass(%q) error is not a validation error: %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVehicleClass(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVehicleClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultTariffTable(t *testing.T) {
	table := DefaultTariffTable()

	if err := table.Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}

	s := table[ClassStandard]
	if s.Opening != 30500 || s.Tier1PerKm != 14700 || s.Tier2PerKm != 13800 || s.Tier3PerKm != 11900 {
		t.Errorf("standard rates wrong: %+v", s)
	}

	p := table[ClassPremium]
	if p.Opening != 34400 || p.Tier1PerKm != 16000 || p.Tier2PerKm != 14900 || p.Tier3PerKm != 12900 {
		t.Errorf("premium rates wrong: %+v", p)
	}
}

func TestTariffTableValidate(t *testing.T) {
	missing := TariffTable{ClassStandard: {Opening: 1000}}
	if err := missing.Validate(); err == nil {
		t.Error("table without premium should be invalid")
	}

	negative := DefaultTariffTable()
	negative[ClassPremium] = TariffSchedule{Opening: -1}
	if err := negative.Validate(); err == nil {
		t.Error("negative rate should be invalid")
	}
}

func TestScheduleLookup(t *testing.T) {
	table := DefaultTariffTable()

	if _, err := table.Schedule(ClassPremium); err != nil {
		t.Errorf("premium lookup failed: %v", err)
	}
	if _, err := table.Schedule(VehicleClass("luxury")); err == nil {
		t.Error("expected error for class outside the table")
	} else if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
