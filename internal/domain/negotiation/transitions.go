package negotiation

import (
	"fmt"

	"blind_negotiation/internal/domain/entities"
)

// allowed lists every forward edge of the lifecycle. Anything missing here,
// including every edge out of FINALIZED and REJECTED, is refused.
var allowed = map[entities.NegotiationStatus][]entities.NegotiationStatus{
	entities.NegotiationStatusStarted: {
		entities.NegotiationStatusCounterOffered,
		entities.NegotiationStatusAccepted,
		entities.NegotiationStatusRejected,
	},
	entities.NegotiationStatusCounterOffered: {
		entities.NegotiationStatusCounterOffered,
		entities.NegotiationStatusAccepted,
		entities.NegotiationStatusRejected,
	},
	entities.NegotiationStatusAccepted: {
		entities.NegotiationStatusBuyerPaymentDone,
		entities.NegotiationStatusSellerPaymentDone,
		entities.NegotiationStatusAdminVerified,
		entities.NegotiationStatusRejected,
	},
	entities.NegotiationStatusBuyerPaymentDone: {
		entities.NegotiationStatusAdminVerified,
		entities.NegotiationStatusRejected,
	},
	entities.NegotiationStatusSellerPaymentDone: {
		entities.NegotiationStatusAdminVerified,
		entities.NegotiationStatusRejected,
	},
	entities.NegotiationStatusAdminVerified: {
		entities.NegotiationStatusFinalized,
		entities.NegotiationStatusRejected,
	},
}

// CanTransition reports whether the lifecycle has an edge from -> to.
func CanTransition(from, to entities.NegotiationStatus) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckInvariants verifies the payment references required by the current
// status. It is evaluated on every transition regardless of how it was reached.
func CheckInvariants(n *entities.Negotiation) error {
	switch n.Status {
	case entities.NegotiationStatusBuyerPaymentDone:
		if n.BuyerPaymentRef == "" {
			return fmt.Errorf("%w: %s requires the buyer payment reference", ErrInvalidState, n.Status)
		}
	case entities.NegotiationStatusSellerPaymentDone:
		if n.SellerPaymentRef == "" {
			return fmt.Errorf("%w: %s requires the seller payment reference", ErrInvalidState, n.Status)
		}
	case entities.NegotiationStatusAdminVerified, entities.NegotiationStatusFinalized:
		if n.BuyerPaymentRef == "" || n.SellerPaymentRef == "" {
			return fmt.Errorf("%w: %s requires both governance fees", ErrInvalidState, n.Status)
		}
	}
	return nil
}

// advance moves n to the target status or leaves it untouched.
func advance(n *entities.Negotiation, to entities.NegotiationStatus) error {
	from := n.Status
	if from.IsTerminal() {
		return fmt.Errorf("%w: negotiation is %s", ErrInvalidState, from)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidState, from, to)
	}
	n.Status = to
	if err := CheckInvariants(n); err != nil {
		n.Status = from
		return err
	}
	return nil
}
