package services

import (
	"fmt"

	"tarif/internal/domain"
	"tarif/internal/utils"
)

const defaultLocale = "id-ID"

// Quote is the result of a single fare estimate. It lives only for the
// request that asked for it; nothing is persisted.
type Quote struct {
	DistanceKm     float64              `json:"distance_km"`
	VehicleClass   domain.VehicleClass  `json:"vehicle_class"`
	Breakdown      domain.FareBreakdown `json:"breakdown"`
	Total          int64                `json:"total"`
	TotalFormatted string               `json:"total_formatted"`
	Locale         string               `json:"locale"`
}

// QuoteService turns raw form input into a priced quote against the
// tariff table loaded at startup.
type QuoteService struct {
	Table     domain.TariffTable
	RequestID string
}

// Estimate coerces the raw distance text (anything unparsable becomes 0),
// resolves the schedule for the requested class and prices the trip.
// Unknown classes are the only error case.
func (s QuoteService) Estimate(rawDistance, rawClass, locale string) (Quote, error) {
	class, err := domain.ParseVehicleClass(rawClass)
	if err != nil {
		return Quote{}, err
	}

	sched, err := s.table().Schedule(class)
	if err != nil {
		return Quote{}, err
	}

	if locale == "" {
		locale = defaultLocale
	}

	distanceKm := utils.ParseDistance(rawDistance)
	breakdown := domain.ComputeBreakdown(distanceKm, sched)

	utils.LogEvent(s.RequestID, "quote", "estimate",
		fmt.Sprintf("class=%s distance_km=%.2f total=%d", class, distanceKm, breakdown.Total))

	return Quote{
		DistanceKm:     distanceKm,
		VehicleClass:   class,
		Breakdown:      breakdown,
		Total:          breakdown.Total,
		TotalFormatted: utils.FormatCurrency(breakdown.Total, locale),
		Locale:         locale,
	}, nil
}

func (s QuoteService) table() domain.TariffTable {
	if s.Table != nil {
		return s.Table
	}
	return domain.DefaultTariffTable()
}
