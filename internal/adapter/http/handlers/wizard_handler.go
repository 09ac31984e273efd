package handlers

import (
	request "crm_xpto/internal/adapter/http/dto/request"
	response "crm_xpto/internal/adapter/http/dto/response"
	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/domain/validation"
	"crm_xpto/internal/usecase"
	"crm_xpto/pkg"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
	errInvalidLineItemIndex = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid line item index", http.StatusBadRequest)
)

// WizardHandler handles HTTP requests for the proposal composition wizard.
type WizardHandler struct {
	usecase usecase.IProposalWizardUseCase
}

func NewWizardHandler(uc usecase.IProposalWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// OpenWizard starts a new editing session. The body is optional; when
// present it may carry the seller to preselect.
func (h *WizardHandler) OpenWizard(c *gin.Context) {
	var payload request.OpenWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.Open(c.Request.Context(), payload.SellerID)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWizardSnapshot(snap))
}

func (h *WizardHandler) GetWizard(c *gin.Context) {
	snap, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

// NextStep validates the current step and advances on success. A failing
// step answers 422 with the field-level messages.
func (h *WizardHandler) NextStep(c *gin.Context) {
	snap, res, err := h.usecase.Next(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !res.OK {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidationResult(res))
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

// BackStep jumps to a strictly earlier step without re-validating.
func (h *WizardHandler) BackStep(c *gin.Context) {
	var payload request.BackStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.Back(c.Request.Context(), c.Param("session_id"), validation.Step(payload.Step))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

// UpdateDraft applies a partial edit. Seller and client selections are
// resolved against the directory before the scalar fields are applied; the
// response always carries the snapshot after the last applied change.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var payload request.DraftUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	sessionID := c.Param("session_id")
	ctx := c.Request.Context()
	var (
		snap    usecase.WizardSnapshot
		applied bool
		err     error
	)

	if payload.SellerID != nil {
		if snap, err = h.usecase.SetSeller(ctx, sessionID, *payload.SellerID); err == nil {
			applied = true
		}
	}
	if err == nil && payload.ClientID != nil {
		if snap, err = h.usecase.SetClient(ctx, sessionID, *payload.ClientID); err == nil {
			applied = true
		}
	}
	if err == nil && payload.HasDetails() {
		upd := usecase.DraftDetailsUpdate{
			Title:                 payload.Title,
			Notes:                 payload.Notes,
			ValidityDays:          payload.ValidityDays,
			ClearValidityDays:     payload.ClearValidityDays,
			GlobalDiscountPercent: payload.GlobalDiscountPercent,
			TaxPercent:            payload.TaxPercent,
		}
		if payload.PaymentMethod != nil {
			pm := entities.PaymentMethod(*payload.PaymentMethod)
			upd.PaymentMethod = &pm
		}
		if snap, err = h.usecase.UpdateDetails(ctx, sessionID, upd); err == nil {
			applied = true
		}
	}
	if err == nil && !applied {
		snap, err = h.usecase.Get(ctx, sessionID)
	}
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

func (h *WizardHandler) AddLineItem(c *gin.Context) {
	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("session_id"), payload.CatalogItemID, payload.ResolveQuantity(), payload.ResolveDiscount())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

func (h *WizardHandler) UpdateLineItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidLineItemIndex.HTTPStatus, errInvalidLineItemIndex.ToHTTPError())
		return
	}

	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("session_id"), index, usecase.LineItemUpdate{
		Quantity:        payload.Quantity,
		DiscountPercent: payload.DiscountPercent,
	})
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

func (h *WizardHandler) RemoveLineItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidLineItemIndex.HTTPStatus, errInvalidLineItemIndex.ToHTTPError())
		return
	}

	snap, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("session_id"), index)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

// SubmitWizard finalizes the draft from the summary step. Validation
// failures answer 422; persistence failures keep the session alive.
func (h *WizardHandler) SubmitWizard(c *gin.Context) {
	proposal, res, err := h.usecase.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !res.OK {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidationResult(res))
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *WizardHandler) CancelWizard(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCatalog returns the cached catalog, filtered by the optional "filter"
// query against item name and category.
func (h *WizardHandler) ListCatalog(c *gin.Context) {
	items, err := h.usecase.Catalog(c.Request.Context(), c.Query("filter"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func (h *WizardHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.Clients(c.Request.Context())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *WizardHandler) ListSellers(c *gin.Context) {
	sellers, err := h.usecase.Sellers(c.Request.Context())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSellers(sellers))
}

// RefreshLookups drops the cached catalog and directory snapshots so the
// next read re-fetches from the upstream services.
func (h *WizardHandler) RefreshLookups(c *gin.Context) {
	h.usecase.InvalidateLookups()
	c.Status(http.StatusNoContent)
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidSellerID),
		errors.Is(err, usecase.ErrInvalidCatalogItemID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrUnknownStep),
		errors.Is(err, usecase.ErrLineItemOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWizardSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSellerNotFound):
		return pkg.NewDomainErrorSimple("SELLER_NOT_FOUND", "Seller not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotEarlierStep),
		errors.Is(err, usecase.ErrNoNextStep),
		errors.Is(err, usecase.ErrNotOnSummaryStep):
		return pkg.NewDomainErrorSimple("INVALID_STEP_TRANSITION", "Invalid step transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "Submission already in flight", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
