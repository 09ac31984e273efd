package request

import (
	"github.com/shopspring/decimal"
)

// OpenWizardRequest starts a new editing session. SellerID is optional and
// carries the seller selected in a previous session across re-opens.
type OpenWizardRequest struct {
	SellerID string `json:"seller_id"`
}

// BackStepRequest jumps the wizard to an earlier step.
type BackStepRequest struct {
	Step string `json:"step" binding:"required"`
}

// DraftUpdateRequest is a partial edit of the draft. Absent fields are left
// untouched; client_id and seller_id are resolved against the directory.
type DraftUpdateRequest struct {
	ClientID              *string          `json:"client_id"`
	SellerID              *string          `json:"seller_id"`
	Title                 *string          `json:"title"`
	Notes                 *string          `json:"notes"`
	PaymentMethod         *string          `json:"payment_method"`
	ValidityDays          *int             `json:"validity_days"`
	ClearValidityDays     bool             `json:"clear_validity_days"`
	GlobalDiscountPercent *decimal.Decimal `json:"global_discount_percent"`
	TaxPercent            *decimal.Decimal `json:"tax_percent"`
}

// HasDetails reports whether the update touches any scalar draft field
// besides the client/seller selection.
func (r DraftUpdateRequest) HasDetails() bool {
	return r.Title != nil || r.Notes != nil || r.PaymentMethod != nil ||
		r.ValidityDays != nil || r.ClearValidityDays ||
		r.GlobalDiscountPercent != nil || r.TaxPercent != nil
}

// AddLineItemRequest appends one catalog item to the cart.
type AddLineItemRequest struct {
	CatalogItemID   string           `json:"catalog_item_id" binding:"required"`
	Quantity        *int             `json:"quantity"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}

// ResolveQuantity defaults an omitted quantity to 1, the same default the
// wizard UI preselects.
func (r AddLineItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func (r AddLineItemRequest) ResolveDiscount() decimal.Decimal {
	if r.DiscountPercent == nil {
		return decimal.Zero
	}
	return *r.DiscountPercent
}

// UpdateLineItemRequest is a partial edit of one line item.
type UpdateLineItemRequest struct {
	Quantity        *int             `json:"quantity"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}
