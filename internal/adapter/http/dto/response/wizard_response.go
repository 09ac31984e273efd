package response

import (
	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/domain/validation"
	"crm_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// WizardResponse is the wire shape of a wizard snapshot. Every mutation
// endpoint returns one so the UI always renders from fresh derived values.
// Steps carries the full navigation order so the UI can draw the stepper
// without hardcoding it.
type WizardResponse struct {
	SessionID   string         `json:"session_id"`
	Step        string         `json:"step"`
	Steps       []string       `json:"steps"`
	Draft       DraftResponse  `json:"draft"`
	Totals      TotalsResponse `json:"totals"`
	HasSoftware bool           `json:"has_software"`
}

type DraftResponse struct {
	Title                 string             `json:"title"`
	Seller                *PartyResponse     `json:"seller"`
	Client                *PartyResponse     `json:"client"`
	LineItems             []LineItemResponse `json:"line_items"`
	GlobalDiscountPercent decimal.Decimal    `json:"global_discount_percent"`
	TaxPercent            decimal.Decimal    `json:"tax_percent"`
	PaymentMethod         string             `json:"payment_method"`
	ValidityDays          *int               `json:"validity_days"`
	Notes                 string             `json:"notes,omitempty"`
}

// PartyResponse is either a client or a seller; Company is only ever set
// for clients.
type PartyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

type LineItemResponse struct {
	CatalogItemID   string          `json:"catalog_item_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category,omitempty"`
	Kind            string          `json:"kind"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Software        bool            `json:"software"`
}

type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableBase    decimal.Decimal `json:"taxable_base"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

func FromWizardSnapshot(s usecase.WizardSnapshot) WizardResponse {
	order := validation.Steps()
	steps := make([]string, len(order))
	for i, step := range order {
		steps[i] = string(step)
	}
	return WizardResponse{
		SessionID:   s.SessionID,
		Step:        string(s.Step),
		Steps:       steps,
		Draft:       fromDraft(s.Draft),
		Totals:      fromTotals(s.Totals),
		HasSoftware: s.HasSoftware,
	}
}

func fromDraft(d entities.DraftProposal) DraftResponse {
	items := make([]LineItemResponse, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = fromLineItem(li)
	}
	out := DraftResponse{
		Title:                 d.Title,
		LineItems:             items,
		GlobalDiscountPercent: d.GlobalDiscountPercent,
		TaxPercent:            d.TaxPercent,
		PaymentMethod:         string(d.PaymentMethod),
		ValidityDays:          d.ValidityDays,
		Notes:                 d.Notes,
	}
	if d.Seller != nil {
		out.Seller = &PartyResponse{ID: d.Seller.ID, Name: d.Seller.Name, Email: d.Seller.Email}
	}
	if d.Client != nil {
		out.Client = &PartyResponse{ID: d.Client.ID, Name: d.Client.Name, Email: d.Client.Email, Company: d.Client.Company}
	}
	return out
}

func fromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		CatalogItemID:   li.Item.ID,
		Name:            li.Item.Name,
		Category:        li.Item.Category,
		Kind:            string(li.Item.Kind),
		UnitPrice:       li.Item.UnitPrice,
		Quantity:        li.Quantity,
		DiscountPercent: li.DiscountPercent,
		Subtotal:        li.Subtotal,
		Software:        li.Item.IsSoftware(),
	}
}

func fromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		TaxableBase:    t.TaxableBase,
		TaxAmount:      t.TaxAmount,
		Total:          t.Total,
	}
}
