package routes

import (
	"blind_negotiation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNegotiations = "/negotiations"
	PathUsers        = "/users"
)

func addNegotiationRoutes(
	rg *gin.RouterGroup,
	negotiationHandler *handlers.NegotiationHandler,
	paymentHandler *handlers.GovernancePaymentHandler,
	realtimeHandler *handlers.RealtimeHandler,
) {
	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.POST("/start", negotiationHandler.Start)
		negotiations.GET("/:negotiation_id", negotiationHandler.Get)
		negotiations.POST("/:negotiation_id/messages", negotiationHandler.SendMessage)
		negotiations.POST("/:negotiation_id/quotes", negotiationHandler.SendQuote)
		negotiations.GET("/:negotiation_id/quote-draft", negotiationHandler.QuoteDraft)
		negotiations.POST("/:negotiation_id/accept", negotiationHandler.Accept)
		negotiations.POST("/:negotiation_id/governance-fee", negotiationHandler.PayGovernanceFee)
		negotiations.POST("/:negotiation_id/finalize", negotiationHandler.Finalize)
		negotiations.POST("/:negotiation_id/withdraw", negotiationHandler.Withdraw)

		negotiations.GET("/:negotiation_id/payments", paymentHandler.ListByNegotiation)
		negotiations.GET("/:negotiation_id/ws", realtimeHandler.ServeWS)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:user_id/negotiations", negotiationHandler.ListForUser)
	}
}
