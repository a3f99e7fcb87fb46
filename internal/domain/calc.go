package domain

import "math"

// Band layout in km. The opening fee absorbs the first 2 km; the next two
// bands span 10 and 13 km; the last band is uncapped. Consecutive bands
// hand off exactly at 2, 12 and 25 km, so the fare is continuous there.
const (
	openingSpanKm = 2.0
	tier1SpanKm   = 10.0
	tier2SpanKm   = 13.0
)

// FareBreakdown itemizes a fare per band. Total is the rounded sum of the
// exact (unrounded) band charges.
type FareBreakdown struct {
	Opening int64 `json:"opening"`
	Tier1   int64 `json:"tier1"`
	Tier2   int64 `json:"tier2"`
	Tier3   int64 `json:"tier3"`
	Total   int64 `json:"total"`
}

func RoundMoney(x float64) int64 {
	return int64(math.Round(x))
}

// ComputeFare returns the fare in rupiah for a trip of distanceKm using
// schedule s. Non-positive distances cost nothing; anything up to 2 km is
// charged the flat opening fee; beyond that each band bills its own slice
// of the distance. The result never decreases as distanceKm grows.
//
// Callers must sanitize the input first: NaN and infinities are not handled
// here (ParseDistance in utils maps anything invalid to 0).
func ComputeFare(distanceKm float64, s TariffSchedule) float64 {
	if distanceKm <= 0 {
		return 0
	}
	if distanceKm <= openingSpanKm {
		return float64(s.Opening)
	}

	total := float64(s.Opening)
	total += math.Min(math.Max(0, distanceKm-openingSpanKm), tier1SpanKm) * float64(s.Tier1PerKm)
	total += math.Min(math.Max(0, distanceKm-openingSpanKm-tier1SpanKm), tier2SpanKm) * float64(s.Tier2PerKm)
	total += math.Max(0, distanceKm-openingSpanKm-tier1SpanKm-tier2SpanKm) * float64(s.Tier3PerKm)
	return total
}

// ComputeBreakdown returns the per-band charges for the same trip.
// The Total field matches RoundMoney(ComputeFare(distanceKm, s)).
func ComputeBreakdown(distanceKm float64, s TariffSchedule) FareBreakdown {
	if distanceKm <= 0 {
		return FareBreakdown{}
	}

	b := FareBreakdown{Opening: s.Opening}
	if distanceKm > openingSpanKm {
		t1 := math.Min(distanceKm-openingSpanKm, tier1SpanKm)
		t2 := math.Min(math.Max(0, distanceKm-openingSpanKm-tier1SpanKm), tier2SpanKm)
		t3 := math.Max(0, distanceKm-openingSpanKm-tier1SpanKm-tier2SpanKm)
		b.Tier1 = RoundMoney(t1 * float64(s.Tier1PerKm))
		b.Tier2 = RoundMoney(t2 * float64(s.Tier2PerKm))
		b.Tier3 = RoundMoney(t3 * float64(s.Tier3PerKm))
	}
	b.Total = RoundMoney(ComputeFare(distanceKm, s))
	return b
}
