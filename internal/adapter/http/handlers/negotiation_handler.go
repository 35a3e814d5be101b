package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"blind_negotiation/internal/adapter/http/dto/request"
	"blind_negotiation/internal/adapter/http/dto/response"
	"blind_negotiation/internal/usecase"

	"github.com/gin-gonic/gin"
)

const headerIdempotencyKey = "Idempotency-Key"

// NegotiationHandler exposes the negotiation orchestrator over HTTP.
type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// Start creates the negotiation for (entity, buyer, seller) or merges the
// request into the existing one.
//
// @Summary      Start or update a negotiation
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        request body request.StartNegotiationRequest true "Start payload"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /negotiations/start [post]
func (h *NegotiationHandler) Start(c *gin.Context) {
	var payload request.StartNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}
	in, err := payload.ToStartInput()
	if err != nil {
		writeError(c, err)
		return
	}

	update, err := h.usecase.Start(c.Request.Context(), in)
	if err != nil {
		slog.Warn("[negotiation][handler] start failed", "entity_id", in.EntityID, "err", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// Get returns the negotiation as seen by the viewer_id query parameter.
//
// @Summary      Get a negotiation
// @Tags         negotiations
// @Produce      json
// @Param        negotiation_id path  string true "Negotiation ID"
// @Param        viewer_id      query string true "Viewing participant"
// @Success      200 {object} response.NegotiationViewResponse
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /negotiations/{negotiation_id} [get]
func (h *NegotiationHandler) Get(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("negotiation_id"), c.Query("viewer_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationView(view))
}

// ListForUser returns every negotiation of user_id, newest first.
//
// @Summary      List a user's negotiations
// @Tags         negotiations
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {array} response.NegotiationViewResponse
// @Router       /users/{user_id}/negotiations [get]
func (h *NegotiationHandler) ListForUser(c *gin.Context) {
	views, err := h.usecase.ListForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationViews(views))
}

// SendMessage appends a plain message.
//
// @Summary      Send a message
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        negotiation_id  path   string                     true  "Negotiation ID"
// @Param        Idempotency-Key header string                     false "Client message key"
// @Param        request         body   request.SendMessageRequest true  "Message"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Router       /negotiations/{negotiation_id}/messages [post]
func (h *NegotiationHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	update, err := h.usecase.SendMessage(c.Request.Context(), c.Param("negotiation_id"), payload.SenderID, payload.Text,
		idempotencyKey(c, payload.IdempotencyKey))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// SendQuote appends a structured quote and moves the negotiation to
// COUNTER_OFFERED.
//
// @Summary      Send a quote
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        negotiation_id  path   string                   true  "Negotiation ID"
// @Param        Idempotency-Key header string                   false "Client message key"
// @Param        request         body   request.SendQuoteRequest true  "Quote"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Router       /negotiations/{negotiation_id}/quotes [post]
func (h *NegotiationHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	update, err := h.usecase.SendQuote(c.Request.Context(), c.Param("negotiation_id"), payload.SenderID,
		payload.ToProposal(), idempotencyKey(c, payload.IdempotencyKey))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// QuoteDraft pre-fills the quote form for sender_id.
//
// @Summary      Quote form defaults
// @Tags         negotiations
// @Produce      json
// @Param        negotiation_id path  string true "Negotiation ID"
// @Param        sender_id      query string true "Participant preparing the quote"
// @Success      200 {object} response.QuoteDraftResponse
// @Router       /negotiations/{negotiation_id}/quote-draft [get]
func (h *NegotiationHandler) QuoteDraft(c *gin.Context) {
	draft, err := h.usecase.QuoteDraft(c.Request.Context(), c.Param("negotiation_id"), c.Query("sender_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}

// @Summary      Accept the current offer
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        negotiation_id path string               true "Negotiation ID"
// @Param        request        body request.ActorRequest true "Actor"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Router       /negotiations/{negotiation_id}/accept [post]
func (h *NegotiationHandler) Accept(c *gin.Context) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	update, err := h.usecase.Accept(c.Request.Context(), c.Param("negotiation_id"), payload.ActorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// PayGovernanceFee charges the payer's governance fee. mp_payload is forwarded
// to the payment gateway untouched.
//
// @Summary      Pay the governance fee
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        negotiation_id path string                       true "Negotiation ID"
// @Param        request        body request.GovernanceFeeRequest true "Payer and Mercado Pago payload"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Failure      402 {object} pkg.HTTPError
// @Router       /negotiations/{negotiation_id}/governance-fee [post]
func (h *NegotiationHandler) PayGovernanceFee(c *gin.Context) {
	negotiationID := c.Param("negotiation_id")
	var payload request.GovernanceFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Warn("[payment][handler] invalid payload", "negotiation_id", negotiationID, "err", err)
		writeInvalidRequest(c)
		return
	}
	slog.Info("[payment][handler] governance fee start", "negotiation_id", negotiationID, "payload_len", len(payload.MPPayload))

	update, err := h.usecase.PayGovernanceFee(c.Request.Context(), negotiationID, payload.PayerID, payload.MPPayload)
	if err != nil {
		slog.Warn("[payment][handler] governance fee failed", "negotiation_id", negotiationID, "err", err)
		writeError(c, err)
		return
	}
	slog.Info("[payment][handler] governance fee success", "negotiation_id", negotiationID, "status", update.Status)
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// Finalize closes an unlocked negotiation. actor_id may be a participant or
// "system".
//
// @Summary      Finalize the deal
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        negotiation_id path string               true "Negotiation ID"
// @Param        request        body request.ActorRequest true "Actor"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Router       /negotiations/{negotiation_id}/finalize [post]
func (h *NegotiationHandler) Finalize(c *gin.Context) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	update, err := h.usecase.Finalize(c.Request.Context(), c.Param("negotiation_id"), payload.ActorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// @Summary      Withdraw from a negotiation
// @Tags         negotiations
// @Accept       json
// @Produce      json
// @Param        negotiation_id path string                  true "Negotiation ID"
// @Param        request        body request.WithdrawRequest true "Actor and reason"
// @Success      200 {object} response.NegotiationUpdateResponse
// @Router       /negotiations/{negotiation_id}/withdraw [post]
func (h *NegotiationHandler) Withdraw(c *gin.Context) {
	var payload request.WithdrawRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	update, err := h.usecase.Withdraw(c.Request.Context(), c.Param("negotiation_id"), payload.ActorID, payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiationUpdate(update))
}

// idempotencyKey prefers the body field and falls back to the header.
func idempotencyKey(c *gin.Context, fromBody string) string {
	if k := strings.TrimSpace(fromBody); k != "" {
		return k
	}
	return strings.TrimSpace(c.GetHeader(headerIdempotencyKey))
}
