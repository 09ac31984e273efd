package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"crm_xpto/internal/adapter/http/handlers/mocks"
	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupProposalHandler(t *testing.T) (*gin.Engine, *mocks.MockIProposalUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := gin.New()
	proposals := r.Group("/v1/proposals")
	proposals.GET("/:id", h.GetProposal)
	proposals.PATCH("/:id/accept", h.AcceptProposal)
	proposals.PATCH("/:id/reject", h.RejectProposal)
	proposals.PATCH("/:id/cancel", h.CancelProposal)
	r.GET("/v1/portal/:token", h.GetProposalByToken)
	return r, uc
}

func TestProposalHandler_GetProposal(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), "prop-x").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/proposals/prop-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusPendente}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/proposals/prop-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["id"] != "prop-1" || body["status"] != "pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProposalHandler_GetProposalByToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().GetByToken(gomock.Any(), "482915306712").Return(entities.Proposal{ID: "prop-1", AccessToken: "482915306712"}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/portal/482915306712", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().GetByToken(gomock.Any(), "000000000000").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/portal/000000000000", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProposalHandler_StatusTransitions(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().AcceptByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAceita}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/prop-1/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().RejectByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusRecusada}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/prop-1/reject", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel not pending answers 409", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().CancelByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrProposalNotPending)

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/prop-1/cancel", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("repository failure answers 500", func(t *testing.T) {
		r, uc := setupProposalHandler(t)
		uc.EXPECT().AcceptByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, errors.New("dynamo down"))

		w := doJSON(t, r, http.MethodPatch, "/v1/proposals/prop-1/accept", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
