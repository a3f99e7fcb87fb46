package domain

import (
	"math"
	"testing"
)

func standardSchedule() TariffSchedule {
	return TariffSchedule{Opening: 30500, Tier1PerKm: 14700, Tier2PerKm: 13800, Tier3PerKm: 11900}
}

func premiumSchedule() TariffSchedule {
	return TariffSchedule{Opening: 34400, Tier1PerKm: 16000, Tier2PerKm: 14900, Tier3PerKm: 12900}
}

func TestComputeFareStandardScenarios(t *testing.T) {
	s := standardSchedule()

	tests := []struct {
		name       string
		distanceKm float64
		want       float64
	}{
		{"zero distance", 0, 0},
		{"negative distance", -3.5, 0},
		{"inside opening band", 1, 30500},
		{"opening boundary", 2, 30500},
		{"fractional opening", 0.7, 30500},
		{"tier1 band", 7, 30500 + 5*14700},
		{"tier1 boundary", 12, 177500},
		{"tier2 band", 20, 177500 + 8*13800},
		{"tier2 boundary", 25, 356900},
		{"tier3 band", 30, 416400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFare(tt.distanceKm, s)
			if got != tt.want {
				t.Errorf("ComputeFare(%v) = %v, want %v", tt.distanceKm, got, tt.want)
			}
		})
	}
}

func TestComputeFarePremium(t *testing.T) {
	s := premiumSchedule()

	if got := ComputeFare(0, s); got != 0 {
		t.Errorf("ComputeFare(0) = %v, want 0", got)
	}
	if got := ComputeFare(2, s); got != 34400 {
		t.Errorf("ComputeFare(2) = %v, want 34400", got)
	}
	if got := ComputeFare(12, s); got != 34400+10*16000 {
		t.Errorf("ComputeFare(12) = %v, want %v", got, 34400+10*16000)
	}
}

func TestComputeFareContinuityAtBoundaries(t *testing.T) {
	for _, class := range Classes() {
		s := DefaultTariffTable()[class]
		for _, boundary := range []float64{2, 12, 25} {
			below := ComputeFare(boundary-1e-9, s)
			at := ComputeFare(boundary, s)
			if math.Abs(at-below) > 1 {
				t.Errorf("%s: fare jumps at %v km: %v -> %v", class, boundary, below, at)
			}
		}
	}
}

func TestComputeFareMonotonic(t *testing.T) {
	s := standardSchedule()
	prev := 0.0
	for d := -2.0; d <= 40; d += 0.25 {
		got := ComputeFare(d, s)
		if got < prev {
			t.Fatalf("fare decreased at %v km: %v < %v", d, got, prev)
		}
		prev = got
	}
}

func TestComputeBreakdown(t *testing.T) {
	s := standardSchedule()

	b := ComputeBreakdown(30, s)
	if b.Opening != 30500 || b.Tier1 != 147000 || b.Tier2 != 179400 || b.Tier3 != 59500 {
		t.Errorf("unexpected breakdown: %+v", b)
	}
	if b.Total != 416400 {
		t.Errorf("breakdown total = %d, want 416400", b.Total)
	}
	if sum := b.Opening + b.Tier1 + b.Tier2 + b.Tier3; sum != b.Total {
		t.Errorf("band sum %d != total %d", sum, b.Total)
	}

	b = ComputeBreakdown(1.5, s)
	if b.Opening != 30500 || b.Tier1 != 0 || b.Tier2 != 0 || b.Tier3 != 0 || b.Total != 30500 {
		t.Errorf("opening-only breakdown wrong: %+v", b)
	}

	b = ComputeBreakdown(-1, s)
	if b != (FareBreakdown{}) {
		t.Errorf("negative distance should produce empty breakdown, got %+v", b)
	}
}

func TestComputeBreakdownMatchesFare(t *testing.T) {
	for _, class := range Classes() {
		s := DefaultTariffTable()[class]
		for _, d := range []float64{0.5, 2, 3.3, 11.9, 12, 18.75, 25, 26.1, 100} {
			b := ComputeBreakdown(d, s)
			if want := RoundMoney(ComputeFare(d, s)); b.Total != want {
				t.Errorf("%s %v km: breakdown total %d, fare %d", class, d, b.Total, want)
			}
		}
	}
}
