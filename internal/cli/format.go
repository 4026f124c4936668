package cli

import (
	"time"

	"github.com/shopspring/decimal"
)

func formatMonto(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// formatBalance always marks the sign so gains and losses read apart.
func formatBalance(v float64) string {
	if v >= 0 {
		return "+" + formatMonto(v)
	}
	return "-" + formatMonto(-v)
}

// formatFecha renders server dates as dd/mm/yyyy. Values that are neither
// RFC 3339 nor plain dates pass through unchanged (chart period labels).
func formatFecha(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}
