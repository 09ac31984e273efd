package response

import (
	"time"

	"crm_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ProposalResponse is the wire shape of a submitted proposal, shared by the
// back-office endpoints and the client portal.
type ProposalResponse struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Seller                PartyResponse      `json:"seller"`
	Client                PartyResponse      `json:"client"`
	LineItems             []LineItemResponse `json:"line_items"`
	GlobalDiscountPercent decimal.Decimal    `json:"global_discount_percent"`
	TaxPercent            decimal.Decimal    `json:"tax_percent"`
	Totals                TotalsResponse     `json:"totals"`
	PaymentMethod         string             `json:"payment_method"`
	ValidityDays          int                `json:"validity_days"`
	ValidUntil            time.Time          `json:"valid_until"`
	Notes                 string             `json:"notes,omitempty"`
	AccessToken           string             `json:"access_token"`
	PaymentLinkURL        string             `json:"payment_link_url,omitempty"`
	Status                string             `json:"status"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	items := make([]LineItemResponse, len(p.LineItems))
	for i, li := range p.LineItems {
		items[i] = fromLineItem(li)
	}
	return ProposalResponse{
		ID:                    p.ID,
		Title:                 p.Title,
		Seller:                PartyResponse{ID: p.Seller.ID, Name: p.Seller.Name, Email: p.Seller.Email},
		Client:                PartyResponse{ID: p.Client.ID, Name: p.Client.Name, Email: p.Client.Email, Company: p.Client.Company},
		LineItems:             items,
		GlobalDiscountPercent: p.GlobalDiscountPercent,
		TaxPercent:            p.TaxPercent,
		Totals:                fromTotals(p.Totals),
		PaymentMethod:         string(p.PaymentMethod),
		ValidityDays:          p.ValidityDays,
		ValidUntil:            p.ValidUntil,
		Notes:                 p.Notes,
		AccessToken:           p.AccessToken,
		PaymentLinkURL:        p.PaymentLinkURL,
		Status:                string(p.Status),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
