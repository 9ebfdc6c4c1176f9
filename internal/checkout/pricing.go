package checkout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
)

// Price is an amount in a currency, for display only. The API recomputes
// the charged amount on its side.
type Price struct {
	Amount   float64
	Currency string
}

// ResolvePrice picks the course price matching the currency the method settles in
func ResolvePrice(course models.Course, method payments.MethodKey) Price {
	if payments.SettlesInUSD(method) {
		return Price{Amount: course.PriceUSD, Currency: "USD"}
	}
	currency := course.Currency
	if currency == "" {
		currency = "ARS"
	}
	return Price{Amount: course.Price, Currency: currency}
}

// String formats the price the way the storefront shows it, e.g. "ARS $85.000"
// or "USD 60"
func (p Price) String() string {
	if p.Currency == "USD" {
		return "USD " + groupThousands(p.Amount)
	}
	return p.Currency + " $" + groupThousands(p.Amount)
}

// groupThousands formats with es-AR separators: "." for thousands, "," for decimals
func groupThousands(v float64) string {
	totalCents := int64(math.Round(math.Abs(v) * 100))
	digits := strconv.FormatInt(totalCents/100, 10)

	var b strings.Builder
	if v < 0 && totalCents > 0 {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if cents := totalCents % 100; cents > 0 {
		b.WriteString(fmt.Sprintf(",%02d", cents))
	}
	return b.String()
}
