package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatRupiah renders integer amount with thousand separators.
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRp%s", sign, formatThousand(amount))
}

// FormatCurrency renders the amount with grouping rules of the given BCP 47
// locale ("id-ID", "en-US", ...). The currency itself is always rupiah;
// unknown or empty locales fall back to Indonesian formatting.
// Pure function of its inputs, safe to call repeatedly.
func FormatCurrency(amount int64, locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.Indonesian
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("Rp%v", number.Decimal(amount))
}

// ParseRupiahToInt parses "Rp 1.000" or "1,000" into an integer amount of Rupiah.
func ParseRupiahToInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "rp")
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(".", "", ",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid rupiah amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
