package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ItemKind is the declared kind of a catalog entry.
type ItemKind string

const (
	ItemKindProduct  ItemKind = "product"
	ItemKindService  ItemKind = "service"
	ItemKindLicense  ItemKind = "license"
	ItemKindModule   ItemKind = "module"
	ItemKindApp      ItemKind = "app"
	ItemKindSoftware ItemKind = "software"
)

// CatalogItem is a sellable entry from the catalog snapshot.
//
// The snapshot is supplied by the catalog provider and is immutable within
// an editing session; line items carry their own copy of the item.
type CatalogItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category"`
	Kind      ItemKind        `json:"kind,omitempty"`
}

// IsSoftware reports whether the item sells licensed software rather than
// physical goods or labor. Software items relax the validity-days rule on
// the terms step and carry licensing display fields in the portal.
//
// Rules are ordered, first match wins:
//  1. explicit "software" kind tag
//  2. category contains "software" (case-insensitive)
//  3. kind is license, module or app
func (i CatalogItem) IsSoftware() bool {
	if i.Kind == ItemKindSoftware {
		return true
	}
	if strings.Contains(strings.ToLower(i.Category), "software") {
		return true
	}
	switch i.Kind {
	case ItemKindLicense, ItemKindModule, ItemKindApp:
		return true
	}
	return false
}
