// Package format renders currency and ratio values for tables and logs.
package format

import (
	"math"

	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/iwvelando/reserve-forecast/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	rounded := mathutil.Round(amount)
	formatted := NumericCurrency(math.Abs(rounded))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	rounded := mathutil.Round(amount)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return message.NewPrinter(language.English).Sprintf("%.2f", rounded)
}

// Percent renders a fraction as a percentage with one decimal (0.4 -> "40.0%").
func Percent(fraction float64) string {
	return message.NewPrinter(language.English).Sprintf("%.1f%%", fraction*constants.PercentageMultiplier)
}
