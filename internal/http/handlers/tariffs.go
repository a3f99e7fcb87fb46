package handlers

import (
	"net/http"

	"tarif/internal/domain"
	"tarif/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/tariffs — schedules with formatted rates, for display.
func GetTariffs(c *gin.Context) {
	table := activeTariffTable()

	out := make([]gin.H, 0, len(table))
	for _, class := range domain.Classes() {
		s, err := table.Schedule(class)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out = append(out, gin.H{
			"vehicle_class": class,
			"opening":       utils.FormatRupiah(s.Opening),
			"tier1_per_km":  utils.FormatRupiah(s.Tier1PerKm),
			"tier2_per_km":  utils.FormatRupiah(s.Tier2PerKm),
			"tier3_per_km":  utils.FormatRupiah(s.Tier3PerKm),
		})
	}

	c.JSON(http.StatusOK, gin.H{"tariffs": out})
}

// GET /api/tariffs/raw — raw integer rates, admin/owner only.
func GetTariffsRaw(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tariffs": activeTariffTable()})
}
