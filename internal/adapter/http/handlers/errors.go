package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/internal/usecase/interfaces"
	"locksmith_invoicing/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoSession      = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

// mapDomainError translates usecase and gateway errors into the client
// envelope. Upstream details stay in the wrapped cause and never reach the body.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", "Authentication required", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidJob):
		return pkg.NewDomainError("INVALID_JOB", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainError("INVALID_CUSTOMER", "Customer display name is required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVIN):
		return pkg.NewDomainError("INVALID_VIN", "VIN must be 17 characters", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoCustomerSelected):
		return pkg.NewDomainError("NO_CUSTOMER_SELECTED", "No QuickBooks customer selected", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInvalidReference):
		return pkg.NewDomainError("INVALID_REFERENCE", "Invalid QuickBooks reference", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOAuthStateMismatch):
		return pkg.NewDomainError("OAUTH_STATE_MISMATCH", "Authorization request expired or was tampered with; connect again", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConsentDenied):
		return pkg.NewDomainError("CONSENT_DENIED", "QuickBooks authorization was declined", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrNotConnected):
		return pkg.NewDomainError("QB_NOT_CONNECTED", "Connect QuickBooks first", err, http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrCredentialsRevoked):
		return pkg.NewDomainError("QB_RECONNECT_REQUIRED", "QuickBooks authorization expired; reconnect QuickBooks", err, http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrAccountingUnauthorized):
		return pkg.NewDomainError("QB_UNAUTHORIZED", "QuickBooks rejected the request", err, http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrUnknownCatalogItem):
		return pkg.NewDomainError("CATALOG_ITEM_NOT_FOUND", "Service is not defined as a QuickBooks item", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrCustomerNotFound):
		return pkg.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInvoiceNotFound):
		return pkg.NewDomainError("INVOICE_NOT_FOUND", "Invoice not found", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInvoiceConflict):
		return pkg.NewDomainError("INVOICE_CONFLICT", "Invoice changed in QuickBooks; retry", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrInvoiceClosed):
		return pkg.NewDomainError("INVOICE_CLOSED", "Invoice is already closed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrJobInProgress):
		return pkg.NewDomainError("JOB_IN_PROGRESS", "A job with this Idempotency-Key is still in progress", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrVehicleLookupFailed):
		return pkg.NewDomainError("VIN_LOOKUP_FAILED", "Failed to decode VIN", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrExternalServiceUnavailable):
		return pkg.NewDomainError("QB_UNAVAILABLE", "QuickBooks service unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	log := logger.FromContext(c.Request.Context())
	fields := []zap.Field{zap.String("code", appErr.Code), zap.Int("status", appErr.HTTPStatus)}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Info("request rejected", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondDomainError(c *gin.Context, err error) {
	respondError(c, mapDomainError(err))
}
