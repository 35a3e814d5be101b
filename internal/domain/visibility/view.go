package visibility

import (
	"time"

	"blind_negotiation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MessageView is a stored message re-displayed through the live resolver.
type MessageView struct {
	ID           string                 `json:"id"`
	Sender       DisplayIdentity        `json:"sender"`
	Text         string                 `json:"text"`
	Timestamp    time.Time              `json:"timestamp"`
	IsQuote      bool                   `json:"is_quote"`
	QuoteDetails *entities.QuoteDetails `json:"quote_details,omitempty"`
}

// Stats summarises a negotiation for dashboards.
type Stats struct {
	Rounds           int             `json:"rounds"`
	BestOffer        decimal.Decimal `json:"best_offer"`
	GovernanceStatus string          `json:"governance_status"`
}

// NegotiationView is the per-viewer projection of a negotiation. The raw
// counterpart id is absent until identities unlock.
type NegotiationView struct {
	ID            string                     `json:"id"`
	EntityID      string                     `json:"entity_id"`
	EntityType    entities.EntityType        `json:"entity_type"`
	Status        entities.NegotiationStatus `json:"status"`
	CurrentOffer  decimal.Decimal            `json:"current_offer"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
	Version       int64                      `json:"version"`
	ViewerRole    entities.PartyRole         `json:"viewer_role"`
	Viewer        DisplayIdentity            `json:"viewer"`
	Counterpart   DisplayIdentity            `json:"counterpart"`
	Unlocked      bool                       `json:"unlocked"`
	BuyerFeePaid  bool                       `json:"buyer_fee_paid"`
	SellerFeePaid bool                       `json:"seller_fee_paid"`
	Messages      []MessageView              `json:"messages"`
	Stats         Stats                      `json:"stats"`
}

// Profiles maps user ids to directory profiles. It is only consulted for
// unlocked negotiations.
type Profiles map[string]*entities.UserProfile

// BuildView projects n for viewerID. viewerID must be a participant.
func BuildView(n *entities.Negotiation, viewerID string, profiles Profiles) NegotiationView {
	role, _ := n.RoleOf(viewerID)
	counterpartID := n.CounterpartOf(viewerID)

	resolve := func(subjectID string) DisplayIdentity {
		return ResolveDisplayName(n, viewerID, subjectID, profiles[subjectID])
	}

	msgs := make([]MessageView, 0, len(n.Messages))
	for _, m := range n.Messages {
		msgs = append(msgs, MessageView{
			ID:           m.ID,
			Sender:       resolve(m.SenderID),
			Text:         m.Text,
			Timestamp:    m.Timestamp,
			IsQuote:      m.IsQuote,
			QuoteDetails: m.QuoteDetails,
		})
	}

	return NegotiationView{
		ID:            n.ID,
		EntityID:      n.EntityID,
		EntityType:    n.EntityType,
		Status:        n.Status,
		CurrentOffer:  n.CurrentOffer,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		Version:       n.Version,
		ViewerRole:    role,
		Viewer:        resolve(viewerID),
		Counterpart:   resolve(counterpartID),
		Unlocked:      n.Status.IsUnlocked(),
		BuyerFeePaid:  n.BuyerPaymentRef != "",
		SellerFeePaid: n.SellerPaymentRef != "",
		Messages:      msgs,
		Stats: Stats{
			Rounds:           n.QuoteCount(),
			BestOffer:        n.CurrentOffer,
			GovernanceStatus: GovernanceStatus(n.Status),
		},
	}
}

// GovernanceStatus is the short label shown next to the negotiation.
func GovernanceStatus(s entities.NegotiationStatus) string {
	switch s {
	case entities.NegotiationStatusAccepted:
		return "Awaiting Fees"
	case entities.NegotiationStatusBuyerPaymentDone:
		return "Buyer Paid"
	case entities.NegotiationStatusSellerPaymentDone:
		return "Seller Paid"
	case entities.NegotiationStatusAdminVerified:
		return "Unlocked"
	case entities.NegotiationStatusFinalized:
		return "Finalized"
	case entities.NegotiationStatusRejected:
		return "Withdrawn"
	default:
		return "Negotiating"
	}
}
