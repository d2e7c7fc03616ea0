package output

import (
	"strconv"

	pkgdecimal "github.com/lifeplan/planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole dollars with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a whole percent.
func FormatPercentage(percent int) string { return strconv.Itoa(percent) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// wholeString renders a decimal rounded to whole units without separators,
// for machine-readable outputs.
func wholeString(d decimal.Decimal) string {
	return pkgdecimal.RoundWhole(d).StringFixed(0)
}
