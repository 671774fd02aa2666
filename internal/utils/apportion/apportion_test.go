package apportion_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kvillacis/condo_management_app/internal/utils/apportion"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWouldBeTotal(t *testing.T) {
	current := map[string]decimal.Decimal{
		"d1": dec("0.5"),
		"d2": dec("0.3"),
		"d3": dec("0.2"),
	}

	t.Run("replaces targeted shares instead of adding", func(t *testing.T) {
		// d3 moves from 0.2 to 0.25: 0.5 + 0.3 + 0.25.
		total := apportion.WouldBeTotal(current, []string{"d3"}, dec("0.25"))
		assert.True(t, total.Equal(dec("1.05")), "got %s", total)
	})

	t.Run("reassigning everything never double counts", func(t *testing.T) {
		total := apportion.WouldBeTotal(current, []string{"d1", "d2", "d3"}, dec("0.3"))
		assert.True(t, total.Equal(dec("0.9")), "got %s", total)
	})

	t.Run("new share applies once per target", func(t *testing.T) {
		total := apportion.WouldBeTotal(current, []string{"d1", "d2"}, dec("0.1"))
		assert.True(t, total.Equal(dec("0.4")), "got %s", total)
	})
}

func TestExceedsLimit(t *testing.T) {
	assert.False(t, apportion.ExceedsLimit(dec("1")))
	assert.False(t, apportion.ExceedsLimit(dec("1.0005")))
	assert.False(t, apportion.ExceedsLimit(dec("1.001")), "the ceiling itself is allowed")
	assert.True(t, apportion.ExceedsLimit(dec("1.0011")))
	assert.True(t, apportion.ExceedsLimit(dec("1.002")))
}

func TestRoundTotalForDisplay(t *testing.T) {
	assert.True(t, apportion.RoundTotalForDisplay(dec("0.9994")).Equal(dec("0.999")))
	assert.True(t, apportion.RoundTotalForDisplay(dec("1.0005")).Equal(dec("1.001")))
	// Display rounding can show 1.000 while the raw total is still short.
	assert.True(t, apportion.RoundTotalForDisplay(dec("0.99996")).Equal(dec("1")))
	assert.True(t, apportion.IsUnderAllocated(dec("0.99996")))
}

func TestIsUnderAllocated(t *testing.T) {
	assert.True(t, apportion.IsUnderAllocated(dec("0.999999")))
	assert.False(t, apportion.IsUnderAllocated(dec("1")))
	assert.False(t, apportion.IsUnderAllocated(dec("1.0005")))
}

func TestAmountOwed(t *testing.T) {
	assert.True(t, apportion.AmountOwed(dec("0.25"), dec("1000")).Equal(dec("250")))
	assert.True(t, apportion.AmountOwed(dec("0"), dec("1000")).Equal(decimal.Zero))
	// Full precision is kept; rounding happens at the presentation boundary.
	owed := apportion.AmountOwed(dec("0.0071425"), dec("1234.56"))
	assert.True(t, owed.Equal(dec("8.8178448")), "got %s", owed)
	assert.True(t, apportion.RoundCurrency(owed).Equal(dec("8.82")))
}

func TestPerUnitValue(t *testing.T) {
	assert.True(t, apportion.PerUnitValue(dec("1000"), dec("0.8")).Equal(dec("1250")))
	assert.True(t, apportion.PerUnitValue(dec("1000"), decimal.Zero).Equal(decimal.Zero))
}

func TestRoundCurrency(t *testing.T) {
	assert.True(t, apportion.RoundCurrency(dec("10.005")).Equal(dec("10.01")))
	assert.True(t, apportion.RoundCurrency(dec("10.004")).Equal(dec("10")))
}
