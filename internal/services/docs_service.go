package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tarif/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF estimasi tarif yang bisa diunduh penumpang.
type DocsService struct {
	Quotes    QuoteService
	RequestID string
}

// GenerateQuotePDF prices the trip and renders the itemized estimate.
func (s DocsService) GenerateQuotePDF(rawDistance, rawClass, locale string) ([]byte, string, error) {
	q, err := s.Quotes.Estimate(rawDistance, rawClass, locale)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_quote",
		fmt.Sprintf("class=%s distance_km=%.2f", q.VehicleClass, q.DistanceKm))
	return buildQuotePDF(q)
}

func buildQuotePDF(q Quote) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Estimasi Tarif", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ESTIMASI TARIF")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Tanggal : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Kelas   : %s", strings.ToUpper(string(q.VehicleClass))),
		fmt.Sprintf("Jarak   : %s km", trimKm(q.DistanceKm)),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	detail := []string{
		"Buka pintu (0-2 km)  : " + utils.FormatRupiah(q.Breakdown.Opening),
		"Jarak 2-12 km        : " + utils.FormatRupiah(q.Breakdown.Tier1),
		"Jarak 12-25 km       : " + utils.FormatRupiah(q.Breakdown.Tier2),
		"Jarak di atas 25 km  : " + utils.FormatRupiah(q.Breakdown.Tier3),
	}
	for _, line := range detail {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupiah(q.Total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: harga di atas adalah estimasi. Tarif akhir mengikuti jarak tempuh sebenarnya.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ESTIMASI_%s_%sKM.pdf",
		strings.ToUpper(string(q.VehicleClass)),
		strings.ReplaceAll(trimKm(q.DistanceKm), ".", "_"),
	)
	return buf.Bytes(), filename, nil
}

func trimKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}
