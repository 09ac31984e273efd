package pricing

import (
	"testing"

	"crm_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func item(price string, qty int, discount string) entities.LineItem {
	return entities.LineItem{
		Item:            entities.CatalogItem{ID: "it-1", Name: "item", UnitPrice: decimal.RequireFromString(price)},
		Quantity:        qty,
		DiscountPercent: decimal.RequireFromString(discount),
	}
}

func assertEq(t *testing.T, got decimal.Decimal, want string, label string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s: expected %s, got %s", label, want, got)
	}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	got := ComputeTotals(nil, decimal.NewFromInt(10), decimal.NewFromInt(12))
	for label, v := range map[string]decimal.Decimal{
		"subtotal":        got.Subtotal,
		"discount_amount": got.DiscountAmount,
		"taxable_base":    got.TaxableBase,
		"tax_amount":      got.TaxAmount,
		"total":           got.Total,
	} {
		if !v.IsZero() {
			t.Fatalf("expected zero %s, got %s", label, v)
		}
	}
}

func TestComputeTotals_ReferenceScenario(t *testing.T) {
	// 2x 100.00 + 1x 50.00, no item discount, 10% global discount, 12% tax.
	items := []entities.LineItem{
		item("100.00", 2, "0"),
		item("50.00", 1, "0"),
	}

	got := ComputeTotals(items, decimal.NewFromInt(10), decimal.NewFromInt(12))

	assertEq(t, got.Subtotal, "250.00", "subtotal")
	assertEq(t, got.DiscountAmount, "25.00", "discount_amount")
	assertEq(t, got.TaxableBase, "225.00", "taxable_base")
	assertEq(t, got.TaxAmount, "27.00", "tax_amount")
	assertEq(t, got.Total, "252.00", "total")
}

func TestComputeTotals_ItemDiscount(t *testing.T) {
	items := []entities.LineItem{item("100.00", 3, "25")}

	got := ComputeTotals(items, decimal.Zero, decimal.Zero)

	assertEq(t, got.Subtotal, "225.00", "subtotal")
	assertEq(t, got.Total, "225.00", "total")
}

func TestComputeTotals_DerivedIdentity(t *testing.T) {
	cases := []struct {
		name     string
		items    []entities.LineItem
		discount string
		tax      string
	}{
		{"plain", []entities.LineItem{item("19.99", 3, "0")}, "0", "0"},
		{"rates", []entities.LineItem{item("33.33", 7, "12.5")}, "7.5", "18"},
		{"mixed", []entities.LineItem{item("100.00", 1, "50"), item("0.01", 9, "0")}, "3", "27"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := decimal.RequireFromString(tc.discount)
			x := decimal.RequireFromString(tc.tax)
			got := ComputeTotals(tc.items, d, x)

			want := got.Subtotal.Sub(got.DiscountAmount).Add(got.TaxAmount)
			if !got.Total.Equal(want) {
				t.Fatalf("identity broken: total=%s expected %s", got.Total, want)
			}
			if !got.TaxableBase.Equal(got.Subtotal.Sub(got.DiscountAmount)) {
				t.Fatalf("taxable base mismatch: %s", got.TaxableBase)
			}

			// Same inputs, same outputs.
			again := ComputeTotals(tc.items, d, x)
			if !again.Total.Equal(got.Total) || !again.Subtotal.Equal(got.Subtotal) {
				t.Fatalf("not idempotent: %+v vs %+v", again, got)
			}
		})
	}
}

func TestComputeTotals_NoClamping(t *testing.T) {
	// Out-of-range rates flow through untouched; rejecting them is the
	// step validator's responsibility.
	items := []entities.LineItem{item("100.00", 1, "0")}

	got := ComputeTotals(items, decimal.NewFromInt(150), decimal.Zero)

	assertEq(t, got.DiscountAmount, "150.00", "discount_amount")
	assertEq(t, got.TaxableBase, "-50.00", "taxable_base")
	assertEq(t, got.Total, "-50.00", "total")
}

func TestLineSubtotal_Rounding(t *testing.T) {
	// 9.99 * 3 * (1 - 1/3 * 100/100) would drift under binary floats.
	it := item("9.99", 3, "33.33")
	assertEq(t, LineSubtotal(it), "19.98", "line subtotal")
}

func TestRefresh_RewritesDerivedSubtotals(t *testing.T) {
	d := entities.DraftProposal{
		LineItems:             []entities.LineItem{item("50.00", 2, "0")},
		GlobalDiscountPercent: decimal.NewFromInt(10),
		TaxPercent:            decimal.NewFromInt(12),
	}
	// Poison the derived field; Refresh must overwrite it.
	d.LineItems[0].Subtotal = decimal.NewFromInt(999)

	totals := Refresh(&d)

	assertEq(t, d.LineItems[0].Subtotal, "100.00", "line subtotal")
	assertEq(t, totals.Subtotal, "100.00", "subtotal")
	assertEq(t, totals.Total, "100.80", "total")
}
