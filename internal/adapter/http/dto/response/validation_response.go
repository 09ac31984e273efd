package response

import (
	"crm_xpto/internal/domain/validation"
)

// ValidationResponse is the 422 body returned when a step fails validation.
// Errors keep field order so the UI can focus the first offending input.
type ValidationResponse struct {
	OK     bool                 `json:"ok"`
	Errors []FieldErrorResponse `json:"errors"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FromValidationResult(r validation.Result) ValidationResponse {
	errs := make([]FieldErrorResponse, len(r.Errors))
	for i, fe := range r.Errors {
		errs[i] = FieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}
	return ValidationResponse{OK: r.OK, Errors: errs}
}
