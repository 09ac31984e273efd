// Package validation gates forward navigation in the proposal wizard.
//
// Validation is advisory: it never mutates the draft and never returns a Go
// error. The wizard surfaces the field-level messages and refuses to
// advance while a step fails.
package validation

import (
	"fmt"

	"crm_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var percentMax = decimal.NewFromInt(100)

// FieldError is one user-correctable problem scoped to a draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one step. Errors keep the order the
// rules are declared in.
type Result struct {
	OK     bool         `json:"ok"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// ValidateStep runs the rule set of a single step against the draft.
// An unknown step fails with a single step-scoped error.
func ValidateStep(step Step, d entities.DraftProposal) Result {
	var r Result
	switch step {
	case StepClient:
		validateClient(&r, d)
	case StepItems:
		validateItems(&r, d)
	case StepTerms:
		validateTerms(&r, d)
	case StepSummary:
		// Defense in depth before submission: re-run every prior step.
		validateClient(&r, d)
		validateItems(&r, d)
		validateTerms(&r, d)
	default:
		r.add("step", fmt.Sprintf("unknown wizard step %q", string(step)))
	}
	r.OK = len(r.Errors) == 0
	return r
}

func validateClient(r *Result, d entities.DraftProposal) {
	if d.Seller == nil {
		r.add("seller", "a salesperson must be selected")
	}
	if d.Client == nil {
		r.add("client", "a client must be selected")
	}
}

func validateItems(r *Result, d entities.DraftProposal) {
	if len(d.LineItems) == 0 {
		r.add("line_items", "at least one line item is required")
	}
	for i, it := range d.LineItems {
		if it.Quantity < 1 {
			r.add(fmt.Sprintf("line_items[%d].quantity", i), "quantity must be at least 1")
		}
		if !percentInRange(it.DiscountPercent) {
			r.add(fmt.Sprintf("line_items[%d].discount_percent", i), "discount must be between 0 and 100")
		}
	}
	if !percentInRange(d.GlobalDiscountPercent) {
		r.add("global_discount_percent", "discount must be between 0 and 100")
	}
	if !percentInRange(d.TaxPercent) {
		r.add("tax_percent", "tax must be between 0 and 100")
	}
}

func validateTerms(r *Result, d entities.DraftProposal) {
	if !d.PaymentMethod.Valid() {
		r.add("payment_method", "a payment method must be chosen")
	}

	// One software item suppresses the validity-days requirement for the
	// whole proposal, also in mixed carts. The aggregate predicate is
	// computed once here so the rule stays single-sourced.
	software := d.HasSoftwareItem()
	switch {
	case d.ValidityDays == nil && !software:
		r.add("validity_days", "validity in days is required")
	case d.ValidityDays != nil && *d.ValidityDays < 1:
		r.add("validity_days", "validity must be at least 1 day")
	}
}

func percentInRange(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(percentMax)
}
