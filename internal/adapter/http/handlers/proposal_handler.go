package handlers

import (
	"context"
	response "crm_xpto/internal/adapter/http/dto/response"
	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase"
	"crm_xpto/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles HTTP requests for submitted proposals: back-office
// lookup and the client portal keyed by access token.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// GetProposalByToken serves the client portal. The token is the numeric
// access code printed on the proposal link sent to the client.
func (h *ProposalHandler) GetProposalByToken(c *gin.Context) {
	proposal, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.AcceptByID)
}

func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.RejectByID)
}

func (h *ProposalHandler) CancelProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.CancelByID)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	proposal, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidAccessToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotPending):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_PENDING", "Proposal already left the pending state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
