package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// GovernancePayment is a governance fee charge persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (negotiation_id-index): negotiation_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original response (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for querying/debugging.
type GovernancePayment struct {
	ID            string          `json:"id"`
	NegotiationID string          `json:"negotiation_id"`
	PayerID       string          `json:"payer_id"`
	Role          PartyRole       `json:"role"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Date          time.Time       `json:"date"`
	Status        PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// GovernanceFeeRequest asks the payment collaborator to charge one party's fee.
// Payload carries the client's payment method data (token, payer...) untouched.
type GovernanceFeeRequest struct {
	NegotiationID string
	PayerID       string
	Role          PartyRole
	Amount        decimal.Decimal
	Currency      string
	Payload       json.RawMessage
}
