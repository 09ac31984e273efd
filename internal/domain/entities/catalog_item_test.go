package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCatalogItem_IsSoftware(t *testing.T) {
	cases := []struct {
		name string
		item CatalogItem
		want bool
	}{
		{"explicit software kind", CatalogItem{Kind: ItemKindSoftware}, true},
		{"software category", CatalogItem{Kind: ItemKindProduct, Category: "Software de gestao"}, true},
		{"software category case-insensitive", CatalogItem{Category: "SOFTWARE"}, true},
		{"license kind", CatalogItem{Kind: ItemKindLicense, Category: "ERP"}, true},
		{"module kind", CatalogItem{Kind: ItemKindModule}, true},
		{"app kind", CatalogItem{Kind: ItemKindApp}, true},
		{"plain product", CatalogItem{Kind: ItemKindProduct, Category: "Hardware"}, false},
		{"service", CatalogItem{Kind: ItemKindService, Category: "Consultoria"}, false},
		{"untagged", CatalogItem{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.IsSoftware(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			// Pure predicate: repeated calls classify identically.
			if tc.item.IsSoftware() != tc.want {
				t.Fatalf("classifier is not deterministic")
			}
		})
	}
}

func TestAnySoftware(t *testing.T) {
	physical := LineItem{Item: CatalogItem{Kind: ItemKindProduct}, Quantity: 1}
	license := LineItem{Item: CatalogItem{Kind: ItemKindLicense}, Quantity: 1}

	if AnySoftware(nil) {
		t.Fatalf("empty cart has no software")
	}
	if AnySoftware([]LineItem{physical}) {
		t.Fatalf("physical-only cart has no software")
	}
	if !AnySoftware([]LineItem{physical, license}) {
		t.Fatalf("mixed cart must report software")
	}
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodInstallments, PaymentMethodInvoice, PaymentMethodCard} {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	if PaymentMethod("").Valid() || PaymentMethod("barter").Valid() {
		t.Fatalf("unexpected valid method")
	}
}

func TestZeroTotals(t *testing.T) {
	z := ZeroTotals()
	if !z.Total.Equal(decimal.Zero) || !z.Subtotal.Equal(decimal.Zero) {
		t.Fatalf("expected zero totals, got %+v", z)
	}
}
