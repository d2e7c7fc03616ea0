package output

import (
	"testing"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":          "$0",
		"999.4":      "$999",
		"1234.5":     "$1,235",
		"-52221.45":  "-$52,221",
		"1234567.49": "$1,234,567",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "36%", FormatPercentage(36))
	assert.Equal(t, "-5%", FormatPercentage(-5))
}

func TestPrimitiveHelpers(t *testing.T) {
	assert.Equal(t, "42", intToString(42))
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
	assert.Equal(t, "-3", wholeString(decimal.RequireFromString("-2.6")))
}

func TestLifeEvents(t *testing.T) {
	assert.Equal(t, "renter", lifeEvents(domain.YearSnapshot{}))
	assert.Equal(t, "married, 2 kid(s), owner", lifeEvents(domain.YearSnapshot{Married: true, Partnered: true, Children: 2, HomeOwner: true}))
	assert.Equal(t, "partnered, renter", lifeEvents(domain.YearSnapshot{Partnered: true}))
}
