package interfaces

import (
	"context"

	"blind_negotiation/internal/domain/entities"
)

// IGovernancePaymentRepository abstracts DynamoDB persistence for GovernancePayment.

type IGovernancePaymentRepository interface {
	Create(ctx context.Context, p entities.GovernancePayment) (entities.GovernancePayment, error)
	GetByID(ctx context.Context, id string) (entities.GovernancePayment, error)
	ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.GovernancePayment, error)
}
