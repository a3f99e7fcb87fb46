package repositories

import (
	"database/sql"
	"log"

	intconfig "tarif/internal/config"
	intdb "tarif/internal/db"
	"tarif/internal/domain"
)

// TariffRepository reads tariff schedules from MySQL. The table it builds
// is loaded once at startup and treated as read-only afterwards.
type TariffRepository struct {
	DB *sql.DB
}

func (r TariffRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// LoadTable assembles the tariff table for the process lifetime. Rows come
// from tariff_schedules when the table exists; a missing table, query
// failure or invalid row leaves the built-in rates for that class in place,
// so the result is always complete and valid.
func (r TariffRepository) LoadTable() domain.TariffTable {
	table := domain.DefaultTariffTable()

	db := r.db()
	if db == nil || !intdb.HasTable(db, "tariff_schedules") {
		return table
	}
	if !intdb.HasColumn(db, "tariff_schedules", "vehicle_class") {
		log.Printf("[TARIFF] skema tariff_schedules tidak dikenal, pakai tarif bawaan")
		return table
	}

	rows, err := db.Query(`
		SELECT vehicle_class, opening_fare, tier1_per_km, tier2_per_km, tier3_per_km
		FROM tariff_schedules
	`)
	if err != nil {
		log.Printf("[TARIFF] gagal membaca tariff_schedules, pakai tarif bawaan: %v", err)
		return table
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawClass string
			s        domain.TariffSchedule
		)
		if err := rows.Scan(&rawClass, &s.Opening, &s.Tier1PerKm, &s.Tier2PerKm, &s.Tier3PerKm); err != nil {
			log.Printf("[TARIFF] baris tarif dilewati: %v", err)
			continue
		}

		class, err := domain.ParseVehicleClass(rawClass)
		if err != nil {
			log.Printf("[TARIFF] kelas tidak dikenal dilewati: %q", rawClass)
			continue
		}
		if err := s.Validate(); err != nil {
			log.Printf("[TARIFF] tarif %s tidak valid, pakai tarif bawaan: %v", class, err)
			continue
		}

		table[class] = s
	}

	return table
}
