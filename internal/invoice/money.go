package invoice

import (
	"fmt"
	"math"
	"strings"
)

// DefaultCurrencySymbol is the symbol used when callers do not configure one.
const DefaultCurrencySymbol = "€"

// Round2 rounds x to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FormatMoney renders an amount using the fixed es-ES convention the
// documents use everywhere: thousands separated by '.', decimal ',' and a
// trailing euro sign, e.g. 1234.5 -> "1.234,50 €".
func FormatMoney(amount float64) string {
	return FormatMoneyWith(amount, DefaultCurrencySymbol)
}

// FormatMoneyWith is FormatMoney with an explicit currency symbol.
func FormatMoneyWith(amount float64, symbol string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	amount = Round2(amount)

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	amount = math.Abs(amount)

	units := int64(amount)
	cents := int64(math.Round((amount - float64(units)) * 100))
	if cents >= 100 {
		units++
		cents -= 100
	}

	return fmt.Sprintf("%s%s,%02d %s", sign, groupThousands(units), cents, symbol)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
