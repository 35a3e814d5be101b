package handlers

import (
	"log/slog"
	"net/http"

	"blind_negotiation/internal/adapter/http/dto/response"
	"blind_negotiation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GovernancePaymentHandler exposes the governance fee ledger of a negotiation
// to its participants.
type GovernancePaymentHandler struct {
	payments     usecase.IGovernancePaymentUseCase
	negotiations usecase.INegotiationUseCase
}

func NewGovernancePaymentHandler(payments usecase.IGovernancePaymentUseCase, negotiations usecase.INegotiationUseCase) *GovernancePaymentHandler {
	return &GovernancePaymentHandler{payments: payments, negotiations: negotiations}
}

// ListByNegotiation returns the fee payments of a negotiation, oldest first.
//
// @Summary      List governance fee payments
// @Tags         payments
// @Produce      json
// @Param        negotiation_id path  string true "Negotiation ID"
// @Param        viewer_id      query string true "Viewing participant"
// @Success      200 {array} response.GovernancePaymentResponse
// @Failure      403 {object} pkg.HTTPError
// @Router       /negotiations/{negotiation_id}/payments [get]
func (h *GovernancePaymentHandler) ListByNegotiation(c *gin.Context) {
	negotiationID := c.Param("negotiation_id")

	// Authorization only: the view itself is discarded.
	if _, err := h.negotiations.Get(c.Request.Context(), negotiationID, c.Query("viewer_id")); err != nil {
		writeError(c, err)
		return
	}

	list, err := h.payments.ListByNegotiationID(c.Request.Context(), negotiationID)
	if err != nil {
		slog.Warn("[payment][handler] list failed", "negotiation_id", negotiationID, "err", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGovernancePayments(list))
}
