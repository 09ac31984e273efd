package response

import (
	"crm_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CatalogItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category,omitempty"`
	Kind      string          `json:"kind"`
	Software  bool            `json:"software"`
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, len(items))
	for i, it := range items {
		out[i] = CatalogItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Category:  it.Category,
			Kind:      string(it.Kind),
			Software:  it.IsSoftware(),
		}
	}
	return out
}

func FromClients(clients []entities.Client) []PartyResponse {
	out := make([]PartyResponse, len(clients))
	for i, c := range clients {
		out[i] = PartyResponse{ID: c.ID, Name: c.Name, Email: c.Email, Company: c.Company}
	}
	return out
}

func FromSellers(sellers []entities.Seller) []PartyResponse {
	out := make([]PartyResponse, len(sellers))
	for i, s := range sellers {
		out[i] = PartyResponse{ID: s.ID, Name: s.Name, Email: s.Email}
	}
	return out
}
