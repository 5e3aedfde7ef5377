package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
	"github.com/regime-co/regime-api/libs/go/types/api/responses"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/samber/lo"
)

// RegimeHandler serves the regime catalogue to the storefront and the admin panel
type RegimeHandler struct {
	regimeService  interfaces.RegimeService
	pricingService interfaces.PricingService
}

// NewRegimeHandler creates a handler with interface dependencies
func NewRegimeHandler(regimeService interfaces.RegimeService, pricingService interfaces.PricingService) *RegimeHandler {
	return &RegimeHandler{
		regimeService:  regimeService,
		pricingService: pricingService,
	}
}

// Use types from the centralized packages
type (
	RegimeResponse      = responses.RegimeResponse
	CreateRegimeRequest = requests.CreateRegimeRequest
	UpdateRegimeRequest = requests.UpdateRegimeRequest
	SetActiveRequest    = requests.SetActiveRequest
)

// toRegimeResponse attaches the price quote of every tier
func (h *RegimeHandler) toRegimeResponse(regime business.Regime) RegimeResponse {
	return RegimeResponse{
		Regime: regime,
		Quotes: lo.Map(business.AllTiers, func(tier business.SubscriptionTier, _ int) business.PriceQuote {
			return h.pricingService.CalculatePrice(regime, tier)
		}),
	}
}

// ListRegimes godoc
// @Summary List regimes
// @Description Lists every active regime with its tier prices
// @Tags regimes
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {object} ErrorResponse
// @Router /regimes [get]
func (h *RegimeHandler) ListRegimes(c *gin.Context) {
	regimes, err := h.regimeService.ListActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list regimes")
		return
	}
	sendList(c, lo.Map(regimes, func(r business.Regime, _ int) RegimeResponse {
		return h.toRegimeResponse(r)
	}))
}

// GetRegime godoc
// @Summary Get a regime
// @Description Gets an active regime by ID
// @Tags regimes
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Success 200 {object} RegimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/{regime_id} [get]
func (h *RegimeHandler) GetRegime(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	regime, err := h.regimeService.Get(c.Request.Context(), id)
	h.sendPublicRegime(c, regime, err)
}

// GetRegimeBySlug godoc
// @Summary Get a regime by slug
// @Description Gets an active regime by its URL slug
// @Tags regimes
// @Produce json
// @Param slug path string true "Regime slug"
// @Success 200 {object} RegimeResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/slug/{slug} [get]
func (h *RegimeHandler) GetRegimeBySlug(c *gin.Context) {
	regime, err := h.regimeService.GetBySlug(c.Request.Context(), c.Param("slug"))
	h.sendPublicRegime(c, regime, err)
}

// sendPublicRegime hides inactive regimes from the storefront
func (h *RegimeHandler) sendPublicRegime(c *gin.Context, regime *business.Regime, err error) {
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve regime")
		return
	}
	if !regime.Active {
		sendError(c, http.StatusNotFound, services.ErrRegimeNotFound.Error(), services.ErrRegimeInactive)
		return
	}
	sendSuccess(c, http.StatusOK, h.toRegimeResponse(*regime))
}

// GetQuote godoc
// @Summary Quote a regime
// @Description Prices a regime under one subscription tier
// @Tags regimes
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param tier query string false "Subscription tier (one-time, 3-months, 6-months)"
// @Success 200 {object} business.PriceQuote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/{regime_id}/quote [get]
func (h *RegimeHandler) GetQuote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	tier, ok := parseTierQuery(c)
	if !ok {
		return
	}

	quote, err := h.regimeService.Quote(c.Request.Context(), id, tier)
	if err != nil {
		handleServiceError(c, err, "Failed to quote regime")
		return
	}
	sendSuccess(c, http.StatusOK, quote)
}

// GetUpsell godoc
// @Summary Compare with the next tier
// @Description Shows what the customer saves by moving to the next subscription tier
// @Tags regimes
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param tier query string false "Current subscription tier"
// @Success 200 {object} business.UpsellComparison
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/{regime_id}/upsell [get]
func (h *RegimeHandler) GetUpsell(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	tier, ok := parseTierQuery(c)
	if !ok {
		return
	}

	comparison, err := h.regimeService.Upsell(c.Request.Context(), id, tier)
	if err != nil {
		handleServiceError(c, err, "Failed to compare tiers")
		return
	}
	sendSuccess(c, http.StatusOK, comparison)
}

// AdminListRegimes godoc
// @Summary List all regimes
// @Description Lists active and inactive regimes with pagination
// @Tags admin
// @Produce json
// @Param limit query int false "Number of items per page (default 20, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/regimes [get]
func (h *RegimeHandler) AdminListRegimes(c *gin.Context) {
	limit, page, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	regimes, total, err := h.regimeService.List(c.Request.Context(), params.ListParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to list regimes")
		return
	}
	sendPaginatedSuccess(c, regimes, page, limit, total)
}

// AdminGetRegime godoc
// @Summary Get any regime
// @Description Gets a regime by ID, including inactive ones
// @Tags admin
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Success 200 {object} business.Regime
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/regimes/{regime_id} [get]
func (h *RegimeHandler) AdminGetRegime(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	regime, err := h.regimeService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve regime")
		return
	}
	sendSuccess(c, http.StatusOK, regime)
}

// CreateRegime godoc
// @Summary Create a regime
// @Description Adds a regime to the catalogue
// @Tags admin
// @Accept json
// @Produce json
// @Param regime body CreateRegimeRequest true "Regime"
// @Success 201 {object} business.Regime
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/regimes [post]
func (h *RegimeHandler) CreateRegime(c *gin.Context) {
	var req CreateRegimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	regime, err := h.regimeService.Create(c.Request.Context(), regimeParamsFromRequest(req))
	if err != nil {
		handleServiceError(c, err, "Failed to create regime")
		return
	}
	sendSuccess(c, http.StatusCreated, regime)
}

// UpdateRegime godoc
// @Summary Update a regime
// @Description Replaces the editable fields of a regime
// @Tags admin
// @Accept json
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param regime body UpdateRegimeRequest true "Regime"
// @Success 200 {object} business.Regime
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/regimes/{regime_id} [put]
func (h *RegimeHandler) UpdateRegime(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	var req UpdateRegimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	regime, err := h.regimeService.Update(c.Request.Context(), id, regimeParamsFromRequest(req))
	if err != nil {
		handleServiceError(c, err, "Failed to update regime")
		return
	}
	sendSuccess(c, http.StatusOK, regime)
}

// SetRegimeActive godoc
// @Summary Show or hide a regime
// @Tags admin
// @Accept json
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param body body SetActiveRequest true "Visibility"
// @Success 200 {object} business.Regime
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/regimes/{regime_id}/active [patch]
func (h *RegimeHandler) SetRegimeActive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	regime, err := h.regimeService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		handleServiceError(c, err, "Failed to update regime")
		return
	}
	sendSuccess(c, http.StatusOK, regime)
}

// DeleteRegime godoc
// @Summary Delete a regime
// @Tags admin
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/regimes/{regime_id} [delete]
func (h *RegimeHandler) DeleteRegime(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	if err := h.regimeService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete regime")
		return
	}
	c.Status(http.StatusNoContent)
}

func regimeParamsFromRequest(req CreateRegimeRequest) params.RegimeParams {
	return params.RegimeParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StepCount:   req.StepCount,
		Items:       req.Items,
		Active:      req.Active,
		OneTime:     tierPricingFromRequest(req.OneTime),
		ThreeMonths: tierPricingFromRequest(req.ThreeMonths),
		SixMonths:   tierPricingFromRequest(req.SixMonths),
	}
}

func tierPricingFromRequest(req requests.TierPricingRequest) business.TierPricing {
	return business.TierPricing{
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		DiscountReason:  req.DiscountReason,
	}
}
