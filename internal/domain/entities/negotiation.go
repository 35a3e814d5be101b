package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegotiationStatus represents the lifecycle of a blind negotiation.
//
// Domain notes:
//   - Status only moves forward; transitions live in internal/domain/negotiation.
//   - REJECTED and FINALIZED are terminal.
//   - Identities unlock at ADMIN_VERIFIED, which requires both governance fees.
type NegotiationStatus string

const (
	NegotiationStatusStarted           NegotiationStatus = "STARTED"
	NegotiationStatusCounterOffered    NegotiationStatus = "COUNTER_OFFERED"
	NegotiationStatusAccepted          NegotiationStatus = "ACCEPTED"
	NegotiationStatusBuyerPaymentDone  NegotiationStatus = "BUYER_PAYMENT_DONE"
	NegotiationStatusSellerPaymentDone NegotiationStatus = "SELLER_PAYMENT_DONE"
	NegotiationStatusAdminVerified     NegotiationStatus = "ADMIN_VERIFIED"
	NegotiationStatusFinalized         NegotiationStatus = "FINALIZED"
	NegotiationStatusRejected          NegotiationStatus = "REJECTED"
)

func (s NegotiationStatus) IsTerminal() bool {
	return s == NegotiationStatusRejected || s == NegotiationStatusFinalized
}

// IsUnlocked reports whether counterpart identities may be disclosed.
func (s NegotiationStatus) IsUnlocked() bool {
	return s == NegotiationStatusAdminVerified || s == NegotiationStatusFinalized
}

// IsNegotiating reports whether quotes may still be exchanged.
func (s NegotiationStatus) IsNegotiating() bool {
	return s == NegotiationStatusStarted || s == NegotiationStatusCounterOffered
}

// EntityType is the kind of catalog item under negotiation.
type EntityType string

const (
	EntityTypeLead    EntityType = "LEAD"
	EntityTypeProduct EntityType = "PRODUCT"
	EntityTypeService EntityType = "SERVICE"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeLead, EntityTypeProduct, EntityTypeService:
		return true
	}
	return false
}

// PartyRole identifies who authored a message or pays a fee.
type PartyRole string

const (
	PartyRoleBuyer  PartyRole = "BUYER"
	PartyRoleSeller PartyRole = "SELLER"
	PartyRoleSystem PartyRole = "SYSTEM"
)

// SystemSenderID authors status-change messages and may finalize on behalf
// of the platform administrator.
const SystemSenderID = "system"

// QuoteDetails is the structured breakdown attached to a quote message.
// Calculator inputs and results are stored together so a quote can be
// re-displayed without recomputation.
type QuoteDetails struct {
	ProductName string `json:"product_name"`

	Price                decimal.Decimal `json:"price"`
	Quantity             decimal.Decimal `json:"quantity"`
	Discount             decimal.Decimal `json:"discount"`
	VisitRequired        bool            `json:"visit_required"`
	VisitCharge          decimal.Decimal `json:"visit_charge"`
	VisitNotes           string          `json:"visit_notes,omitempty"`
	InstallationRequired bool            `json:"installation_required"`
	InstallationCharge   decimal.Decimal `json:"installation_charge"`
	InstallationNotes    string          `json:"installation_notes,omitempty"`
	OtherCharges         decimal.Decimal `json:"other_charges"`
	OtherChargesRemark   string          `json:"other_charges_remark,omitempty"`
	GSTPercent           decimal.Decimal `json:"gst_percent"`

	DeliveryDays       int    `json:"delivery_days,omitempty"`
	InstallationTime   string `json:"installation_time,omitempty"`
	TermsAndConditions string `json:"terms_and_conditions,omitempty"`

	BaseTotal  decimal.Decimal `json:"base_total"`
	Extras     decimal.Decimal `json:"extras"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	GSTAmount  decimal.Decimal `json:"gst_amount"`
	FinalPrice decimal.Decimal `json:"final_price"`

	// Version counts quote messages only, starting at 1.
	Version int `json:"version"`
}

// Message is immutable once appended to a Negotiation.
//
// SenderName holds the pseudonym computed at send time; real names are never
// persisted on messages.
type Message struct {
	ID             string        `json:"id"`
	SenderID       string        `json:"sender_id"`
	SenderRole     PartyRole     `json:"sender_role"`
	SenderName     string        `json:"sender_name"`
	Text           string        `json:"text"`
	Timestamp      time.Time     `json:"timestamp"`
	IsQuote        bool          `json:"is_quote"`
	QuoteDetails   *QuoteDetails `json:"quote_details,omitempty"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
}

// Negotiation is the persisted negotiation record.
//
// Storage model (DynamoDB):
//   - PK: id (derived from entity/buyer/seller, see negotiation.DeriveID)
//   - GSI buyer_id-index (PK buyer_id, SK created_at)
//   - GSI seller_id-index (PK seller_id, SK created_at)
//
// Version is the optimistic-concurrency counter; every successful save bumps it.
type Negotiation struct {
	ID           string            `json:"id"`
	EntityID     string            `json:"entity_id"`
	EntityType   EntityType        `json:"entity_type"`
	BuyerID      string            `json:"buyer_id"`
	SellerID     string            `json:"seller_id"`
	CurrentOffer decimal.Decimal   `json:"current_offer"`
	Status       NegotiationStatus `json:"status"`
	Messages     []Message         `json:"messages"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Sequence is a ULID taken at creation; it orders records created within
	// the same instant.
	Sequence string `json:"sequence"`

	BuyerPaymentRef  string `json:"buyer_payment_ref,omitempty"`
	SellerPaymentRef string `json:"seller_payment_ref,omitempty"`

	Version int64 `json:"version"`
}

// RoleOf returns the participant role of userID.
func (n *Negotiation) RoleOf(userID string) (PartyRole, bool) {
	switch {
	case userID == "":
		return "", false
	case userID == n.BuyerID:
		return PartyRoleBuyer, true
	case userID == n.SellerID:
		return PartyRoleSeller, true
	}
	return "", false
}

func (n *Negotiation) IsParticipant(userID string) bool {
	_, ok := n.RoleOf(userID)
	return ok
}

// CounterpartOf returns the other participant's id.
func (n *Negotiation) CounterpartOf(userID string) string {
	if userID == n.BuyerID {
		return n.SellerID
	}
	return n.BuyerID
}

func (n *Negotiation) QuoteCount() int {
	count := 0
	for _, m := range n.Messages {
		if m.IsQuote {
			count++
		}
	}
	return count
}

// LastQuote returns the most recent quote message, if any.
func (n *Negotiation) LastQuote() (Message, bool) {
	for i := len(n.Messages) - 1; i >= 0; i-- {
		if n.Messages[i].IsQuote {
			return n.Messages[i], true
		}
	}
	return Message{}, false
}

// FindByIdempotencyKey looks up a message previously appended by senderID
// with the same client key.
func (n *Negotiation) FindByIdempotencyKey(senderID, key string) (Message, bool) {
	if key == "" {
		return Message{}, false
	}
	for _, m := range n.Messages {
		if m.SenderID == senderID && m.IdempotencyKey == key {
			return m, true
		}
	}
	return Message{}, false
}

// LastTimestamp returns the timestamp of the newest message, or CreatedAt.
func (n *Negotiation) LastTimestamp() time.Time {
	if len(n.Messages) == 0 {
		return n.CreatedAt
	}
	return n.Messages[len(n.Messages)-1].Timestamp
}

// Clone copies the record so a transition can be attempted without touching
// the loaded state. Messages are immutable, so copying the slice is enough.
func (n Negotiation) Clone() Negotiation {
	out := n
	out.Messages = make([]Message, len(n.Messages))
	copy(out.Messages, n.Messages)
	return out
}
