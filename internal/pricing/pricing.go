// Package pricing computes line and cart totals.
//
// All arithmetic is done with shopspring/decimal so lines do not
// accumulate float rounding error; rounding to two places happens only
// at the presentation boundary (see Display).
package pricing

import (
	"github.com/shopspring/decimal"

	"electromart/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// LineTotal returns unit_price * qty * (1 - discount/100) * (1 + gst/100).
//
// Inputs are expected to already satisfy the cart input ranges
// (quantity 1..100, discount 0..100, gst 0..50); out-of-range values
// are the caller's problem and are not revalidated here.
func LineTotal(e domain.CartEntry) decimal.Decimal {
	unit := decimal.NewFromFloat(e.UnitPrice)
	qty := decimal.NewFromInt(int64(e.Quantity))
	discount := hundred.Sub(decimal.NewFromInt(int64(e.DiscountPercent))).Div(hundred)
	gst := hundred.Add(decimal.NewFromInt(int64(e.GSTPercent))).Div(hundred)
	return unit.Mul(qty).Mul(discount).Mul(gst)
}

// GrandTotal sums LineTotal over all entries; zero for an empty cart.
func GrandTotal(entries []domain.CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(LineTotal(e))
	}
	return total
}

// Display rounds an amount to two decimal places for rendering.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
