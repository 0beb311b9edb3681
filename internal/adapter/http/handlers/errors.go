package handlers

import (
	"errors"
	"net/http"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/logger"
	"tour_billing/internal/usecase"
	"tour_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dates must be YYYY-MM-DD", http.StatusBadRequest)
)

// writeError renders appErr. Server errors are tagged with the request's
// correlation id and attached to the gin context for the request logger.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.IsServerError() {
		if appErr.Err != nil {
			_ = c.Error(appErr.Err)
		}
		appErr = appErr.WithCorrelationID(logger.CorrelationID(c.Request.Context()))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the failures every resource shares.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidConfig):
		return pkg.NewDomainError("INVALID_PAYMENT_TERM", "Invalid payment term configuration", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The resource was modified concurrently, retry the request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured), errors.Is(err, usecase.ErrEvidenceStorageNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "A required integration is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
