package entities

import "github.com/shopspring/decimal"

// Totals is the derived financial breakdown of a proposal. It is produced
// by the pricing engine only; no other component may compute or cache it.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableBase    decimal.Decimal `json:"taxable_base"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

// ZeroTotals is the breakdown of an empty cart.
func ZeroTotals() Totals {
	zero := decimal.Zero.Round(2)
	return Totals{
		Subtotal:       zero,
		DiscountAmount: zero,
		TaxableBase:    zero,
		TaxAmount:      zero,
		Total:          zero,
	}
}
