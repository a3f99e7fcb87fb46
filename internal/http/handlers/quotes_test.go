package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tarif/internal/http/middleware"
	"tarif/internal/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/api/quotes", CreateQuote)
	r.GET("/api/quotes/pdf", GetQuotePDF)
	r.GET("/api/tariffs", GetTariffs)
	return r
}

func postQuote(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, services.Quote) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var q services.Quote
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
			t.Fatalf("invalid quote payload: %v", err)
		}
	}
	return w, q
}

func TestCreateQuote(t *testing.T) {
	r := newTestRouter()

	w, q := postQuote(t, r, `{"distance":"30","vehicle_class":"standard"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if q.Total != 416400 {
		t.Errorf("total = %d, want 416400", q.Total)
	}
	if q.TotalFormatted != "Rp416.400" {
		t.Errorf("total_formatted = %q", q.TotalFormatted)
	}

	// Numeric distance behaves the same as text.
	w, q = postQuote(t, r, `{"distance":12,"vehicle_class":"standard"}`)
	if w.Code != http.StatusOK || q.Total != 177500 {
		t.Errorf("numeric distance: status=%d total=%d", w.Code, q.Total)
	}

	// Garbage distance coerces to 0, not an error.
	w, q = postQuote(t, r, `{"distance":"abc","vehicle_class":"premium"}`)
	if w.Code != http.StatusOK || q.Total != 0 {
		t.Errorf("garbage distance: status=%d total=%d", w.Code, q.Total)
	}

	// Missing distance field behaves like an empty form.
	w, q = postQuote(t, r, `{"vehicle_class":"premium"}`)
	if w.Code != http.StatusOK || q.Total != 0 {
		t.Errorf("missing distance: status=%d total=%d", w.Code, q.Total)
	}
}

func TestCreateQuoteUnknownClass(t *testing.T) {
	r := newTestRouter()

	w, _ := postQuote(t, r, `{"distance":"10","vehicle_class":"helicopter"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetQuotePDF(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/pdf?distance=12&class=standard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "ESTIMASI_STANDARD_") {
		t.Errorf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Errorf("body is not a PDF")
	}
}

func TestGetTariffs(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tariffs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Tariffs []map[string]string `json:"tariffs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if len(resp.Tariffs) != 2 {
		t.Fatalf("expected 2 tariffs, got %d", len(resp.Tariffs))
	}
	if resp.Tariffs[0]["vehicle_class"] != "standard" || resp.Tariffs[0]["opening"] != "Rp30.500" {
		t.Errorf("unexpected standard tariff row: %+v", resp.Tariffs[0])
	}
	if resp.Tariffs[1]["vehicle_class"] != "premium" || resp.Tariffs[1]["opening"] != "Rp34.400" {
		t.Errorf("unexpected premium tariff row: %+v", resp.Tariffs[1])
	}
}
