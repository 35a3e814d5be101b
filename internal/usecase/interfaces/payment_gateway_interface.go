package interfaces

import (
	"context"
	"encoding/json"

	"blind_negotiation/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The governance fee flow uses it to charge a party and persist the provider
// response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// IPaymentConfirmation turns a governance fee request into a payment
// reference. An error means no fee was taken.
type IPaymentConfirmation interface {
	ConfirmPayment(ctx context.Context, req entities.GovernanceFeeRequest) (paymentRef string, err error)
}
