package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
	"github.com/regime-co/regime-api/libs/go/types/api/responses"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// RegimeFormHandler drives the personalization wizard for one storefront session
type RegimeFormHandler struct {
	formService interfaces.RegimeFormService
}

// NewRegimeFormHandler creates a handler with interface dependencies
func NewRegimeFormHandler(formService interfaces.RegimeFormService) *RegimeFormHandler {
	return &RegimeFormHandler{formService: formService}
}

// Use types from the centralized packages
type (
	RegimeFormResponse    = responses.RegimeFormResponse
	SubmitFormStepRequest = requests.SubmitFormStepRequest
	JumpFormStepRequest   = requests.JumpFormStepRequest
)

// formTarget reads the session and regime every wizard route needs
func formTarget(c *gin.Context) (string, uuid.UUID, bool) {
	regimeID, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return "", uuid.Nil, false
	}
	sessionID, ok := GetSessionID(c)
	if !ok {
		return "", uuid.Nil, false
	}
	return sessionID, regimeID, true
}

// sendFormState answers with the wizard state. Step validation failures are 422 so the
// client can show them next to the fields while keeping what was typed.
func (h *RegimeFormHandler) sendFormState(c *gin.Context, state *business.RegimeFormState, fieldErrs []business.FieldError) {
	steps := h.formService.Steps()
	resp := RegimeFormResponse{
		State:  *state,
		Steps:  steps,
		Errors: fieldErrs,
	}
	if state.CurrentStep >= 0 && state.CurrentStep < len(steps) {
		resp.Step = steps[state.CurrentStep]
	}

	status := http.StatusOK
	if len(fieldErrs) > 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

// StartForm godoc
// @Summary Start the regime questionnaire
// @Description Starts the wizard for this session, or resumes saved progress
// @Tags regime-form
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Success 200 {object} RegimeFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /regimes/{regime_id}/form [post]
func (h *RegimeFormHandler) StartForm(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	state, err := h.formService.Start(c.Request.Context(), sessionID, regimeID)
	if err != nil {
		handleServiceError(c, err, "Failed to start questionnaire")
		return
	}
	h.sendFormState(c, state, nil)
}

// GetForm godoc
// @Summary Get questionnaire progress
// @Tags regime-form
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Success 200 {object} RegimeFormResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/{regime_id}/form [get]
func (h *RegimeFormHandler) GetForm(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	state, err := h.formService.Load(c.Request.Context(), sessionID, regimeID)
	if err != nil {
		handleServiceError(c, err, "Failed to load questionnaire")
		return
	}
	h.sendFormState(c, state, nil)
}

// SubmitStep godoc
// @Summary Submit the current step
// @Description Saves the answers of the current step and advances when they are valid
// @Tags regime-form
// @Accept json
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Param body body SubmitFormStepRequest true "Step answers"
// @Success 200 {object} RegimeFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} RegimeFormResponse
// @Router /regimes/{regime_id}/form/steps [post]
func (h *RegimeFormHandler) SubmitStep(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	var req SubmitFormStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	state, fieldErrs, err := h.formService.SubmitStep(c.Request.Context(), sessionID, regimeID, req.Answers)
	if err != nil {
		handleServiceError(c, err, "Failed to save answers")
		return
	}
	h.sendFormState(c, state, fieldErrs)
}

// PreviousStep godoc
// @Summary Go back one step
// @Tags regime-form
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Success 200 {object} RegimeFormResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/{regime_id}/form/back [post]
func (h *RegimeFormHandler) PreviousStep(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	state, err := h.formService.Back(c.Request.Context(), sessionID, regimeID)
	if err != nil {
		handleServiceError(c, err, "Failed to move back")
		return
	}
	h.sendFormState(c, state, nil)
}

// JumpToStep godoc
// @Summary Jump to an unlocked step
// @Tags regime-form
// @Accept json
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Param body body JumpFormStepRequest true "Target step"
// @Success 200 {object} RegimeFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /regimes/{regime_id}/form/jump [post]
func (h *RegimeFormHandler) JumpToStep(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	var req JumpFormStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	state, err := h.formService.JumpTo(c.Request.Context(), sessionID, regimeID, *req.Step)
	if err != nil {
		handleServiceError(c, err, "Failed to change step")
		return
	}
	h.sendFormState(c, state, nil)
}

// CompleteForm godoc
// @Summary Finish the questionnaire
// @Description Validates every answer. On failure the wizard moves to the first invalid step.
// @Tags regime-form
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Success 200 {object} RegimeFormResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} RegimeFormResponse
// @Router /regimes/{regime_id}/form/complete [post]
func (h *RegimeFormHandler) CompleteForm(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	state, fieldErrs, err := h.formService.Complete(c.Request.Context(), sessionID, regimeID)
	if err != nil {
		handleServiceError(c, err, "Failed to complete questionnaire")
		return
	}
	h.sendFormState(c, state, fieldErrs)
}

// ResetForm godoc
// @Summary Discard questionnaire progress
// @Tags regime-form
// @Param regime_id path string true "Regime ID"
// @Param X-Session-ID header string true "Storefront session"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Router /regimes/{regime_id}/form [delete]
func (h *RegimeFormHandler) ResetForm(c *gin.Context) {
	sessionID, regimeID, ok := formTarget(c)
	if !ok {
		return
	}
	if err := h.formService.Reset(c.Request.Context(), sessionID, regimeID); err != nil {
		handleServiceError(c, err, "Failed to reset questionnaire")
		return
	}
	c.Status(http.StatusNoContent)
}
