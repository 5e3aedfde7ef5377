package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/middleware"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/responses"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse           = responses.ErrorResponse
	SuccessResponse         = responses.SuccessResponse
	ValidationErrorResponse = responses.ValidationErrorResponse
	PaginatedResponse       = responses.PaginatedResponse
	Pagination              = responses.Pagination
	ListResponse            = responses.ListResponse
)

// serviceErrorStatus maps service sentinels to the status the client sees. The sentinel
// text is safe to show to customers.
var serviceErrorStatus = []struct {
	err    error
	status int
}{
	{services.ErrRegimeNotFound, http.StatusNotFound},
	{services.ErrOrderNotFound, http.StatusNotFound},
	{services.ErrGiftNotFound, http.StatusNotFound},
	{services.ErrReviewNotFound, http.StatusNotFound},
	{services.ErrSubscriberNotFound, http.StatusNotFound},
	{services.ErrDiscountNotFound, http.StatusNotFound},
	{services.ErrCartItemNotFound, http.StatusNotFound},
	{services.ErrFormNotStarted, http.StatusNotFound},

	{services.ErrRegimeSlugExists, http.StatusConflict},
	{services.ErrDiscountCodeExists, http.StatusConflict},
	{services.ErrDiscountLocked, http.StatusConflict},
	{services.ErrDiscountInUse, http.StatusConflict},
	{services.ErrGiftAlreadyRedeemed, http.StatusConflict},
	{services.ErrAlreadyPaid, http.StatusConflict},
	{services.ErrStatusUnchanged, http.StatusConflict},
	{services.ErrOrderStatusConflict, http.StatusConflict},
	{services.ErrOrderCancelled, http.StatusConflict},
	{services.ErrOrderCompleted, http.StatusConflict},
	{services.ErrFormCompleted, http.StatusConflict},

	{services.ErrRegimeInactive, http.StatusUnprocessableEntity},
	{services.ErrDiscountInactive, http.StatusUnprocessableEntity},
	{services.ErrDiscountExhausted, http.StatusUnprocessableEntity},
	{services.ErrFormIncomplete, http.StatusUnprocessableEntity},
	{services.ErrFormStepLocked, http.StatusUnprocessableEntity},
	{services.ErrGiftNotPaid, http.StatusUnprocessableEntity},

	{services.ErrInvalidOrderStatus, http.StatusBadRequest},
	{services.ErrInvalidRegimeInput, http.StatusBadRequest},
	{services.ErrInvalidFormStep, http.StatusBadRequest},
	{services.ErrMissingSessionID, http.StatusBadRequest},
	{services.ErrCartEmpty, http.StatusBadRequest},
	{services.ErrCartFull, http.StatusBadRequest},
	{services.ErrInvalidQuantity, http.StatusBadRequest},
	{services.ErrInvalidTier, http.StatusBadRequest},
	{services.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{services.ErrInvalidEmail, http.StatusBadRequest},
	{services.ErrInvalidDiscountCode, http.StatusBadRequest},
	{services.ErrInvalidDiscountAmount, http.StatusBadRequest},
	{services.ErrNotBankTransfer, http.StatusBadRequest},
	{services.ErrNotCardPayment, http.StatusBadRequest},

	{helpers.ErrInvalidUnsubscribeToken, http.StatusForbidden},

	{services.ErrPaymentFailed, http.StatusBadGateway},
	{services.ErrCardPaymentsUnavailable, http.StatusServiceUnavailable},
	{services.ErrUnsubscribeUnavailable, http.StatusServiceUnavailable},
}

// sendError logs err and sends a JSON error carrying the request's correlation ID
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Debug(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError translates a service error into an HTTP response
func handleServiceError(c *gin.Context, err error, fallback string) {
	var details *services.InvalidDetailsError
	if errors.As(err, &details) {
		sendFieldErrors(c, "Invalid details", details.Fields)
		return
	}

	for _, m := range serviceErrorStatus {
		if errors.Is(err, m.err) {
			sendError(c, m.status, m.err.Error(), err)
			return
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		sendError(c, http.StatusNotFound, "Not found", err)
		return
	}
	sendError(c, http.StatusInternalServerError, fallback, err)
}

// sendFieldErrors reports field level validation failures
func sendFieldErrors(c *gin.Context, message string, fields []business.FieldError) {
	details := make(map[string]string, len(fields))
	for _, f := range fields {
		details[f.Field] = f.Message
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: message, Details: details})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList sends an unpaginated list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, ListResponse{Object: "list", Data: items})
}

// sendPaginatedSuccess sends a paginated list response
func sendPaginatedSuccess(c *gin.Context, data interface{}, page, limit int32, total int64) {
	pagination := helpers.BuildPagination(helpers.PaginationParams{Page: page, Limit: limit}, total)
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       data,
		Object:     "list",
		HasMore:    pagination.CurrentPage < pagination.TotalPages,
		Pagination: pagination,
	})
}

// validatePaginationParams validates and returns limit and page parameters
func validatePaginationParams(c *gin.Context) (limit int32, page int32, err error) {
	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		return 0, 0, err
	}
	return params.Limit, params.Page, nil
}

// parseUUIDParam reads a UUID path parameter, answering 400 when it is malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID format", label), err)
		return uuid.Nil, false
	}
	return id, true
}

// parseTierQuery reads the ?tier= query parameter, defaulting to one-time
func parseTierQuery(c *gin.Context) (business.SubscriptionTier, bool) {
	raw := c.DefaultQuery("tier", string(business.TierOneTime))
	tier := business.SubscriptionTier(raw)
	if !tier.IsValid() {
		sendError(c, http.StatusBadRequest, "Invalid tier", services.ErrInvalidTier)
		return "", false
	}
	return tier, true
}
