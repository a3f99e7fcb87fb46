package domain

import "strings"

// VehicleClass selects which tariff schedule applies.
// The set is closed: only two service classes are offered.
type VehicleClass string

const (
	ClassStandard VehicleClass = "standard"
	ClassPremium  VehicleClass = "premium"
)

// Classes lists every supported vehicle class in display order.
func Classes() []VehicleClass {
	return []VehicleClass{ClassStandard, ClassPremium}
}

// ParseVehicleClass normalizes raw user input into a VehicleClass.
func ParseVehicleClass(raw string) (VehicleClass, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ClassStandard):
		return ClassStandard, nil
	case string(ClassPremium):
		return ClassPremium, nil
	default:
		return "", ValidationError{Field: "vehicle_class", Msg: "kelas kendaraan tidak dikenal: " + raw}
	}
}

// TariffSchedule holds per-class rates in rupiah. Opening is a flat charge
// covering the first 2 km; the per-km rates apply to the 2-12 km, 12-25 km
// and 25+ km bands.
type TariffSchedule struct {
	Opening    int64 `json:"opening"`
	Tier1PerKm int64 `json:"tier1PerKm"`
	Tier2PerKm int64 `json:"tier2PerKm"`
	Tier3PerKm int64 `json:"tier3PerKm"`
}

// Validate rejects schedules with negative rates.
func (s TariffSchedule) Validate() error {
	if s.Opening < 0 || s.Tier1PerKm < 0 || s.Tier2PerKm < 0 || s.Tier3PerKm < 0 {
		return ValidationError{Field: "tariff_schedule", Msg: "tarif tidak boleh negatif"}
	}
	return nil
}

// TariffTable maps each vehicle class to its schedule. It is assembled once
// at startup and must never be mutated afterwards.
type TariffTable map[VehicleClass]TariffSchedule

// DefaultTariffTable returns the built-in rates used when no external
// tariff source is available.
func DefaultTariffTable() TariffTable {
	return TariffTable{
		ClassStandard: {Opening: 30500, Tier1PerKm: 14700, Tier2PerKm: 13800, Tier3PerKm: 11900},
		ClassPremium:  {Opening: 34400, Tier1PerKm: 16000, Tier2PerKm: 14900, Tier3PerKm: 12900},
	}
}

// Schedule resolves the schedule for a class.
func (t TariffTable) Schedule(class VehicleClass) (TariffSchedule, error) {
	s, ok := t[class]
	if !ok {
		return TariffSchedule{}, NotFoundError{Resource: "tariff schedule " + string(class)}
	}
	return s, nil
}

// Validate ensures the table covers every class with valid rates.
func (t TariffTable) Validate() error {
	for _, class := range Classes() {
		s, ok := t[class]
		if !ok {
			return ValidationError{Field: "tariff_table", Msg: "kelas " + string(class) + " tidak memiliki tarif"}
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
