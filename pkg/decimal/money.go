package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Money represents a currency amount carried at full precision between
// projection years and rounded to whole units only for display.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// String returns the whole-unit amount with thousands separators.
func (m Money) String() string {
	return GroupThousands(RoundWhole(m.Decimal).StringFixed(0))
}

// Format formats the money amount as a dollar figure, e.g. "$1,234" or "-$50".
func (m Money) Format() string {
	s := m.String()
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// RoundWhole rounds d to an integer, with .5 going toward +infinity
// (-2.5 -> -2, 2.5 -> 3).
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// RoundPercent returns part/whole*100 rounded to a whole percent, or zero when
// whole is not positive.
func RoundPercent(part, whole decimal.Decimal) int {
	if !whole.IsPositive() {
		return 0
	}
	return int(RoundWhole(Percent(part, whole)).IntPart())
}

// Percent returns part/whole*100 unrounded, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// GroupThousands inserts comma separators into an integer string.
func GroupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
