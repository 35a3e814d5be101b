package handlers

import (
	"errors"
	"net/http"

	"blind_negotiation/internal/adapter/http/dto/request"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/usecase"
	"blind_negotiation/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, negotiation.ErrValidation),
		errors.Is(err, request.ErrInvalidEntityType),
		errors.Is(err, request.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPaymentNegotiationID),
		errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, negotiation.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, negotiation.ErrNotAParticipant):
		return pkg.NewDomainError("NOT_A_PARTICIPANT", "User is not a participant of this negotiation", err, http.StatusForbidden)
	case errors.Is(err, negotiation.ErrConflict):
		return pkg.NewRetryableError("CONFLICT", "Negotiation was modified concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, negotiation.ErrCollaboratorUnavailable):
		return pkg.NewRetryableError("COLLABORATOR_UNAVAILABLE", "A dependent service is unavailable, retry", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGovernancePaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", "Governance fee payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGovernancePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidRequest(c *gin.Context) {
	c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}
