// Package pricing is the single source of truth for proposal money math.
//
// Every function here is pure and total: no I/O, no errors, same inputs
// always produce the same breakdown. Percentages are computed faithfully
// without clamping; rejecting out-of-range rates is the step validator's
// job, so callers must treat negative results as invalid upstream.
package pricing

import (
	"crm_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// LineSubtotal derives the subtotal of a single line item:
// unit price * quantity * (1 - discount/100), rounded to 2 decimal places.
func LineSubtotal(it entities.LineItem) decimal.Decimal {
	qty := decimal.NewFromInt(int64(it.Quantity))
	factor := one.Sub(it.DiscountPercent.Div(hundred))
	return it.Item.UnitPrice.Mul(qty).Mul(factor).Round(2)
}

// ComputeTotals turns the line items plus the global discount and tax rates
// into the full breakdown. An empty cart yields all-zero totals. Each
// derived value is rounded to 2 decimal places before the next one is
// computed, so the identity total = subtotal - discount + tax holds exactly.
func ComputeTotals(items []entities.LineItem, globalDiscountPercent, taxPercent decimal.Decimal) entities.Totals {
	if len(items) == 0 {
		return entities.ZeroTotals()
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(LineSubtotal(it))
	}
	subtotal = subtotal.Round(2)

	discount := subtotal.Mul(globalDiscountPercent).Div(hundred).Round(2)
	base := subtotal.Sub(discount)
	tax := base.Mul(taxPercent).Div(hundred).Round(2)

	return entities.Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableBase:    base,
		TaxAmount:      tax,
		Total:          base.Add(tax),
	}
}

// Refresh rewrites the derived Subtotal of every line item in place and
// returns the recomputed totals. The wizard calls it after each mutation so
// a draft can never be observed with stale derived values.
func Refresh(d *entities.DraftProposal) entities.Totals {
	for i := range d.LineItems {
		d.LineItems[i].Subtotal = LineSubtotal(d.LineItems[i])
	}
	return ComputeTotals(d.LineItems, d.GlobalDiscountPercent, d.TaxPercent)
}
