package invoice

import "math"

// Totals is the derived money breakdown for an invoice. It is never stored;
// recomputation is O(items) and runs after every edit.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxableBase    float64
	TaxAmount      float64
	Total          float64
}

// ComputeTotals derives the money breakdown from line items, a discount and a
// tax rate. It is pure and deterministic: safe to call on every keystroke.
//
// The taxable base is floored at zero, so a discount larger than the subtotal
// yields base, tax and total of zero. The discount amount itself is reported
// unclamped.
func ComputeTotals(items []LineItem, discount Discount, taxRatePercent float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += coerce(it.Quantity) * coerce(it.UnitPrice)
	}

	value := coerce(discount.Value)
	discountAmount := value
	if discount.Mode == DiscountPercent {
		discountAmount = subtotal * value / 100
	}

	base := subtotal - discountAmount
	if base < 0 {
		base = 0
	}

	tax := base * coerce(taxRatePercent) / 100

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableBase:    base,
		TaxAmount:      tax,
		Total:          base + tax,
	}
}

// coerce maps NaN, infinite and negative numeric input to zero. A half-typed
// quantity or discount must never break the live preview, and negative values
// are clamped rather than allowed as signed adjustments.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
