package entities

import "github.com/shopspring/decimal"

// PaymentMethod is how the client pays an accepted proposal.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodInstallments PaymentMethod = "installments"
	PaymentMethodInvoice      PaymentMethod = "invoice"
	PaymentMethodCard         PaymentMethod = "card"
)

// Valid reports whether the method is one of the accepted values.
// The zero value means "not chosen yet" and is not valid.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodInstallments, PaymentMethodInvoice, PaymentMethodCard:
		return true
	}
	return false
}

// LineItem is one catalog item inside a draft plus its quantity and own
// discount. Subtotal is derived from the other three fields and is
// recomputed by the pricing engine on every mutation, never edited.
type LineItem struct {
	Item            CatalogItem     `json:"item"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// DraftProposal is the in-progress quote owned by the wizard for the
// lifetime of an editing session. It is mutated exclusively through wizard
// actions and discarded on cancel or successful submission.
type DraftProposal struct {
	Title                 string          `json:"title,omitempty"`
	Seller                *Seller         `json:"seller,omitempty"`
	Client                *Client         `json:"client,omitempty"`
	LineItems             []LineItem      `json:"line_items"`
	GlobalDiscountPercent decimal.Decimal `json:"global_discount_percent"`
	TaxPercent            decimal.Decimal `json:"tax_percent"`
	PaymentMethod         PaymentMethod   `json:"payment_method,omitempty"`
	ValidityDays          *int            `json:"validity_days,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
}

// HasSoftwareItem is the aggregate software predicate consumed by the terms
// step and the validity defaulting at submission. One software item is
// enough to flip the whole proposal, also in mixed carts.
func (d DraftProposal) HasSoftwareItem() bool {
	return AnySoftware(d.LineItems)
}

// AnySoftware reports whether at least one line item classifies as software.
func AnySoftware(items []LineItem) bool {
	for _, it := range items {
		if it.Item.IsSoftware() {
			return true
		}
	}
	return false
}
