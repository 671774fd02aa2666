package apportion

import (
	"github.com/shopspring/decimal"
)

// shareTolerance is the additive tolerance absorbed when validating the
// condominium-wide sum of shares. It is applied to the raw sum; display
// rounding (3 decimals) is a separate, purely cosmetic concern.
var shareTolerance = decimal.NewFromFloat(0.001)

// MaxShareTotal is the raw sum ceiling: 1 + tolerance.
var MaxShareTotal = decimal.NewFromInt(1).Add(shareTolerance)

// WouldBeTotal computes the condominium-wide sum that a share assignment
// would produce: the shares of every department NOT in the target set, plus
// newShare for each targeted department. Departments in the target set are
// excluded from the "everyone else" sum regardless of position, so
// reassigning an already-assigned department never double counts.
func WouldBeTotal(currentShares map[string]decimal.Decimal, targetIDs []string, newShare decimal.Decimal) decimal.Decimal {
	targeted := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		targeted[id] = struct{}{}
	}

	total := decimal.Zero
	for id, share := range currentShares {
		if _, ok := targeted[id]; ok {
			continue
		}
		total = total.Add(share)
	}
	return total.Add(newShare.Mul(decimal.NewFromInt(int64(len(targeted)))))
}

// ExceedsLimit reports whether a raw share total violates the sum invariant.
func ExceedsLimit(rawTotal decimal.Decimal) bool {
	return rawTotal.GreaterThan(MaxShareTotal)
}

// RoundTotalForDisplay rounds a raw share total to 3 decimals. Only used
// for display and the under-allocation warning, never for the authoritative
// overflow comparison.
func RoundTotalForDisplay(rawTotal decimal.Decimal) decimal.Decimal {
	return rawTotal.Round(3)
}

// IsUnderAllocated reports whether the condominium's shares sum to strictly
// less than 1. This is a warning state, not an error: departments with a
// zero share are valid.
func IsUnderAllocated(rawTotal decimal.Decimal) bool {
	return rawTotal.LessThan(decimal.NewFromInt(1))
}

// AmountOwed is the authoritative per-department obligation: share times the
// expense total, at full precision. It deliberately does not divide by the
// share total so it stays defined for under-allocated condominiums.
func AmountOwed(share, expenseTotal decimal.Decimal) decimal.Decimal {
	return share.Mul(expenseTotal)
}

// PerUnitValue is the display-only "value per unit of share":
// expenseTotal / shareTotal when the total is positive, zero otherwise.
func PerUnitValue(expenseTotal, shareTotal decimal.Decimal) decimal.Decimal {
	if shareTotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return expenseTotal.Div(shareTotal)
}

// RoundCurrency rounds a monetary value to 2 decimals. Applied only at the
// presentation boundary; internal computation keeps full precision so
// summing many departments for reconciliation does not compound error.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
