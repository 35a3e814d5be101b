package response

import (
	"time"

	"blind_negotiation/internal/domain/entities"
)

// GovernancePaymentResponse omits the payer id and the provider payload: both
// can carry identifying data.
type GovernancePaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	NegotiationID string    `json:"negotiation_id"`
	Role          string    `json:"role"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

func FromGovernancePayment(p entities.GovernancePayment) GovernancePaymentResponse {
	return GovernancePaymentResponse{
		PaymentID:     p.ID,
		NegotiationID: p.NegotiationID,
		Role:          string(p.Role),
		Amount:        money(p.Amount),
		Currency:      p.Currency,
		Date:          p.Date,
		Status:        string(p.Status),
	}
}

func FromGovernancePayments(list []entities.GovernancePayment) []GovernancePaymentResponse {
	out := make([]GovernancePaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromGovernancePayment(p))
	}
	return out
}
