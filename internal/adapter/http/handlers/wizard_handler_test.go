package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_xpto/internal/adapter/http/handlers/mocks"
	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/domain/validation"
	"crm_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func setupWizardHandler(t *testing.T) (*gin.Engine, *mocks.MockIProposalWizardUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalWizardUseCase(ctrl)
	h := NewWizardHandler(uc)

	r := gin.New()
	wizard := r.Group("/v1/proposals/wizard")
	wizard.POST("", h.OpenWizard)
	wizard.GET("/:session_id", h.GetWizard)
	wizard.PATCH("/:session_id", h.UpdateDraft)
	wizard.DELETE("/:session_id", h.CancelWizard)
	wizard.POST("/:session_id/next", h.NextStep)
	wizard.POST("/:session_id/back", h.BackStep)
	wizard.POST("/:session_id/items", h.AddLineItem)
	wizard.PATCH("/:session_id/items/:index", h.UpdateLineItem)
	wizard.DELETE("/:session_id/items/:index", h.RemoveLineItem)
	wizard.POST("/:session_id/submit", h.SubmitWizard)
	r.GET("/v1/catalog", h.ListCatalog)
	r.GET("/v1/clients", h.ListClients)
	r.GET("/v1/sellers", h.ListSellers)
	r.POST("/v1/lookups/refresh", h.RefreshLookups)
	return r, uc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWizardHandler_OpenWizard(t *testing.T) {
	t.Run("empty body opens without seller", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Open(gomock.Any(), "").Return(usecase.WizardSnapshot{SessionID: "sess-1", Step: validation.StepClient}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["session_id"] != "sess-1" || body["step"] != "client" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("seller id is forwarded", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Open(gomock.Any(), "sel-1").Return(usecase.WizardSnapshot{SessionID: "sess-1"}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard", `{"seller_id":"sel-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := setupWizardHandler(t)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown seller", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Open(gomock.Any(), "sel-x").Return(usecase.WizardSnapshot{}, usecase.ErrSellerNotFound)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard", `{"seller_id":"sel-x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWizardHandler_GetWizard(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Get(gomock.Any(), "sess-x").Return(usecase.WizardSnapshot{}, usecase.ErrWizardSessionNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/proposals/wizard/sess-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Get(gomock.Any(), "sess-1").Return(usecase.WizardSnapshot{SessionID: "sess-1", Step: validation.StepItems}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/proposals/wizard/sess-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWizardHandler_NextStep(t *testing.T) {
	t.Run("validation failure answers 422", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		res := validation.Result{OK: false, Errors: []validation.FieldError{{Field: "client", Message: "client is required"}}}
		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.WizardSnapshot{SessionID: "sess-1"}, res, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/next", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body struct {
			OK     bool `json:"ok"`
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.OK || len(body.Errors) != 1 || body.Errors[0].Field != "client" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("advances on success", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.WizardSnapshot{SessionID: "sess-1", Step: validation.StepItems}, validation.Result{OK: true}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/next", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("last step answers 409", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.WizardSnapshot{}, validation.Result{}, usecase.ErrNoNextStep)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/next", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWizardHandler_BackStep(t *testing.T) {
	t.Run("missing step", func(t *testing.T) {
		r, _ := setupWizardHandler(t)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/back", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forward jump answers 409", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Back(gomock.Any(), "sess-1", validation.StepSummary).Return(usecase.WizardSnapshot{}, usecase.ErrNotEarlierStep)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/back", `{"step":"summary"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Back(gomock.Any(), "sess-1", validation.StepClient).Return(usecase.WizardSnapshot{SessionID: "sess-1", Step: validation.StepClient}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/back", `{"step":"client"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWizardHandler_UpdateDraft(t *testing.T) {
	t.Run("client then details", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		snap := usecase.WizardSnapshot{SessionID: "sess-1"}
		gomock.InOrder(
			uc.EXPECT().SetClient(gomock.Any(), "sess-1", "cli-1").Return(snap, nil),
			uc.EXPECT().UpdateDetails(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
				func(_ any, _ string, upd usecase.DraftDetailsUpdate) (usecase.WizardSnapshot, error) {
					if upd.PaymentMethod == nil || *upd.PaymentMethod != entities.PaymentMethodInvoice {
						t.Fatalf("unexpected update: %+v", upd)
					}
					return snap, nil
				}),
		)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/wizard/sess-1", `{"client_id":"cli-1","payment_method":"invoice"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty payload returns current snapshot", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Get(gomock.Any(), "sess-1").Return(usecase.WizardSnapshot{SessionID: "sess-1"}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/wizard/sess-1", `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().UpdateDetails(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.WizardSnapshot{}, usecase.ErrInvalidPaymentMethod)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/wizard/sess-1", `{"payment_method":"barter"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().SetClient(gomock.Any(), "sess-1", "cli-x").Return(usecase.WizardSnapshot{}, usecase.ErrClientNotFound)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/wizard/sess-1", `{"client_id":"cli-x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWizardHandler_LineItems(t *testing.T) {
	t.Run("add defaults quantity to 1", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().AddLineItem(gomock.Any(), "sess-1", "cat-1", 1, decimal.Zero).Return(usecase.WizardSnapshot{SessionID: "sess-1"}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/items", `{"catalog_item_id":"cat-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add requires catalog item id", func(t *testing.T) {
		r, _ := setupWizardHandler(t)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/items", `{"quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add unknown catalog item", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().AddLineItem(gomock.Any(), "sess-1", "cat-x", 1, decimal.Zero).Return(usecase.WizardSnapshot{}, usecase.ErrCatalogItemNotFound)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/items", `{"catalog_item_id":"cat-x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update rejects non numeric index", func(t *testing.T) {
		r, _ := setupWizardHandler(t)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/wizard/sess-1/items/abc", `{"quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update forwards partial edit", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().UpdateLineItem(gomock.Any(), "sess-1", 0, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ int, upd usecase.LineItemUpdate) (usecase.WizardSnapshot, error) {
				if upd.Quantity == nil || *upd.Quantity != 3 || upd.DiscountPercent != nil {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return usecase.WizardSnapshot{SessionID: "sess-1"}, nil
			})

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/wizard/sess-1/items/0", `{"quantity":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove out of range", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().RemoveLineItem(gomock.Any(), "sess-1", 5).Return(usecase.WizardSnapshot{}, usecase.ErrLineItemOutOfRange)

		w := doJSON(t, r, http.MethodDelete, "/v1/proposals/wizard/sess-1/items/5", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWizardHandler_SubmitWizard(t *testing.T) {
	t.Run("success answers 201", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		p := entities.Proposal{ID: "prop-1", AccessToken: "482915306712", Status: entities.ProposalStatusPendente}
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(p, validation.Result{OK: true}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/submit", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["access_token"] != "482915306712" || body["status"] != "pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("validation failure answers 422", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		res := validation.Result{OK: false, Errors: []validation.FieldError{{Field: "payment_method", Message: "payment method is required"}}}
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.Proposal{}, res, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/submit", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("outside summary answers 409", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.Proposal{}, validation.Result{}, usecase.ErrNotOnSummaryStep)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/submit", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent submit answers 409", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.Proposal{}, validation.Result{}, usecase.ErrSubmissionInFlight)

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/submit", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("persistence failure answers 500", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.Proposal{}, validation.Result{OK: true}, errors.New("dynamo down"))

		w := doJSON(t, r, http.MethodPost, "/v1/proposals/wizard/sess-1/submit", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWizardHandler_CancelWizard(t *testing.T) {
	t.Run("success answers 204", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Cancel(gomock.Any(), "sess-1").Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/proposals/wizard/sess-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Cancel(gomock.Any(), "sess-x").Return(usecase.ErrWizardSessionNotFound)

		w := doJSON(t, r, http.MethodDelete, "/v1/proposals/wizard/sess-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWizardHandler_Lookups(t *testing.T) {
	t.Run("catalog forwards filter", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		items := []entities.CatalogItem{{ID: "cat-3", Name: "ERP license", UnitPrice: decimal.RequireFromString("500.00"), Category: "Software", Kind: entities.ItemKindLicense}}
		uc.EXPECT().Catalog(gomock.Any(), "erp").Return(items, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/catalog?filter=erp", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body) != 1 || body[0]["software"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("catalog failure answers 500", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().Catalog(gomock.Any(), "").Return(nil, errors.New("upstream down"))

		w := doJSON(t, r, http.MethodGet, "/v1/catalog", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("refresh answers 204", func(t *testing.T) {
		r, uc := setupWizardHandler(t)
		uc.EXPECT().InvalidateLookups()

		w := doJSON(t, r, http.MethodPost, "/v1/lookups/refresh", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
