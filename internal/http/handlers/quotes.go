package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"tarif/internal/domain"
	"tarif/internal/http/middleware"
	"tarif/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	tableMu     sync.RWMutex
	tariffTable = domain.DefaultTariffTable()
)

// UseTariffTable installs the table loaded at startup. The table is
// read-only for the rest of the process lifetime.
func UseTariffTable(t domain.TariffTable) {
	if t == nil {
		return
	}
	tableMu.Lock()
	defer tableMu.Unlock()
	tariffTable = t
}

func activeTariffTable() domain.TariffTable {
	tableMu.RLock()
	defer tableMu.RUnlock()
	return tariffTable
}

type quoteRequest struct {
	// Distance is the raw free-text field from the form; the service
	// coerces anything unparsable to 0.
	Distance     any    `json:"distance"`
	VehicleClass string `json:"vehicle_class" binding:"required"`
	Locale       string `json:"locale"`
}

// POST /api/quotes
func CreateQuote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.QuoteService{
		Table:     activeTariffTable(),
		RequestID: middleware.GetRequestID(c),
	}

	quote, err := svc.Estimate(distanceText(req.Distance), req.VehicleClass, req.Locale)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// GET /api/quotes/pdf?distance=12.5&class=standard&locale=id-ID
func GetQuotePDF(c *gin.Context) {
	svc := services.DocsService{
		Quotes: services.QuoteService{
			Table:     activeTariffTable(),
			RequestID: middleware.GetRequestID(c),
		},
		RequestID: middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateQuotePDF(c.Query("distance"), c.Query("class"), c.Query("locale"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// distanceText renders whatever JSON value the client sent for distance
// back into text, so string and numeric payloads behave the same.
func distanceText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
