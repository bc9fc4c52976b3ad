package invoice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleItems() []LineItem {
	return []LineItem{
		{ID: "a", Description: "Servicio profesional", Quantity: 1, UnitPrice: 300},
		{ID: "b", Description: "Soporte", Quantity: 2, UnitPrice: 50},
	}
}

func TestComputeTotalsReferenceScenario(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(sampleItems(), Discount{Mode: DiscountPercent, Value: 0}, 21)

	require.Equal(t, 400.0, totals.Subtotal)
	require.Equal(t, 0.0, totals.DiscountAmount)
	require.Equal(t, 400.0, totals.TaxableBase)
	require.Equal(t, 84.0, totals.TaxAmount)
	require.Equal(t, 484.0, totals.Total)
}

func TestComputeTotalsDiscountExceedsSubtotal(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(sampleItems(), Discount{Mode: DiscountAmount, Value: 500}, 21)

	require.Equal(t, 400.0, totals.Subtotal)
	require.Equal(t, 500.0, totals.DiscountAmount)
	require.Equal(t, 0.0, totals.TaxableBase)
	require.Equal(t, 0.0, totals.TaxAmount)
	require.Equal(t, 0.0, totals.Total)
}

func TestComputeTotalsPercentDiscount(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(sampleItems(), Discount{Mode: DiscountPercent, Value: 25}, 10)

	require.Equal(t, 100.0, totals.DiscountAmount)
	require.Equal(t, 300.0, totals.TaxableBase)
	require.Equal(t, 30.0, totals.TaxAmount)
	require.Equal(t, 330.0, totals.Total)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(nil, Discount{Mode: DiscountPercent, Value: 10}, 21)

	require.Zero(t, totals.Subtotal)
	require.Zero(t, totals.DiscountAmount)
	require.Zero(t, totals.TaxableBase)
	require.Zero(t, totals.TaxAmount)
	require.Zero(t, totals.Total)
}

func TestComputeTotalsCoercesMalformedNumbers(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		{ID: "a", Quantity: math.NaN(), UnitPrice: 100},
		{ID: "b", Quantity: 2, UnitPrice: math.Inf(1)},
		{ID: "c", Quantity: 3, UnitPrice: 10},
	}

	totals := ComputeTotals(items, Discount{Mode: DiscountPercent, Value: math.NaN()}, math.NaN())

	require.Equal(t, 30.0, totals.Subtotal)
	require.Equal(t, 0.0, totals.DiscountAmount)
	require.Equal(t, 30.0, totals.TaxableBase)
	require.Equal(t, 0.0, totals.TaxAmount)
	require.Equal(t, 30.0, totals.Total)
}

// Negative discount and tax values clamp to zero rather than acting as signed
// adjustments. This pins the chosen policy for inputs the form never blocks.
func TestComputeTotalsClampsNegativeInputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		discount Discount
		taxRate  float64
		want     Totals
	}{
		{
			name:     "negative percent discount",
			discount: Discount{Mode: DiscountPercent, Value: -50},
			taxRate:  21,
			want:     Totals{Subtotal: 400, DiscountAmount: 0, TaxableBase: 400, TaxAmount: 84, Total: 484},
		},
		{
			name:     "negative amount discount",
			discount: Discount{Mode: DiscountAmount, Value: -100},
			taxRate:  21,
			want:     Totals{Subtotal: 400, DiscountAmount: 0, TaxableBase: 400, TaxAmount: 84, Total: 484},
		},
		{
			name:     "negative tax rate",
			discount: Discount{Mode: DiscountPercent, Value: 0},
			taxRate:  -21,
			want:     Totals{Subtotal: 400, DiscountAmount: 0, TaxableBase: 400, TaxAmount: 0, Total: 400},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeTotals(sampleItems(), tc.discount, tc.taxRate)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestComputeTotalsNegativeQuantityAndPriceClampToZero(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		{ID: "a", Quantity: -2, UnitPrice: 100},
		{ID: "b", Quantity: 1, UnitPrice: -50},
		{ID: "c", Quantity: 4, UnitPrice: 25},
	}

	totals := ComputeTotals(items, Discount{}, 0)
	require.Equal(t, 100.0, totals.Subtotal)
}

func TestComputeTotalsIsIdempotent(t *testing.T) {
	t.Parallel()

	items := sampleItems()
	discount := Discount{Mode: DiscountPercent, Value: 12.5}

	first := ComputeTotals(items, discount, 21)
	second := ComputeTotals(items, discount, 21)
	require.Equal(t, first, second)
}

func TestComputeTotalsMatchesClosedForm(t *testing.T) {
	t.Parallel()

	// total = max(0, subtotal - discount) × (1 + rate/100)
	items := []LineItem{{ID: "a", Quantity: 3, UnitPrice: 199.99}}
	totals := ComputeTotals(items, Discount{Mode: DiscountAmount, Value: 99.97}, 21)

	base := 3*199.99 - 99.97
	require.InDelta(t, base*1.21, totals.Total, 1e-9)
}

func TestLineItemAmountRecomputes(t *testing.T) {
	t.Parallel()

	it := LineItem{ID: "x", Quantity: 2.5, UnitPrice: 40}
	require.Equal(t, 100.0, it.Amount())

	it.Quantity = math.NaN()
	require.Equal(t, 0.0, it.Amount())
}
