// Package negotiation holds the negotiation lifecycle: record construction,
// quote rounds, acceptance, governance fees and the terminal states.
//
// Every operation mutates the record passed in and returns the messages it
// appended. Callers work on a clone and persist it only when no error is
// returned, so a failed operation never leaves partial changes behind.
package negotiation

import (
	"fmt"
	"strings"
	"time"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/quote"
	"blind_negotiation/internal/domain/visibility"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// idNamespace scopes negotiation ids derived from their party triple.
var idNamespace = uuid.MustParse("6f1c2a9e-3b7d-4c55-9a0e-2d8f41b7c3a1")

// DeriveID returns the id of the negotiation between buyerID and sellerID over
// entityID. The same triple always maps to the same id, which is what makes
// concurrent starts collapse into one record.
func DeriveID(entityID, buyerID, sellerID string) string {
	key := entityID + "\x00" + buyerID + "\x00" + sellerID
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

// Machine applies lifecycle operations. Now and NewID are replaceable in tests.
type Machine struct {
	Now   func() time.Time
	NewID func() string
}

func NewMachine() *Machine {
	return &Machine{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: func() string { return ulid.Make().String() },
	}
}

// CreateParams describes a new negotiation.
type CreateParams struct {
	EntityID     string
	EntityType   entities.EntityType
	BuyerID      string
	SellerID     string
	InitialOffer decimal.Decimal
}

// QuoteProposal is a quote as submitted by a party: the priced input plus the
// descriptive fields shown alongside it.
type QuoteProposal struct {
	Input quote.Input

	ProductName        string
	Notes              string
	VisitNotes         string
	InstallationNotes  string
	OtherChargesRemark string
	DeliveryDays       int
	InstallationTime   string
	TermsAndConditions string
}

// Create builds a STARTED negotiation. Version stays zero until first saved.
func (m *Machine) Create(p CreateParams) (entities.Negotiation, error) {
	p.EntityID = strings.TrimSpace(p.EntityID)
	p.BuyerID = strings.TrimSpace(p.BuyerID)
	p.SellerID = strings.TrimSpace(p.SellerID)

	switch {
	case p.EntityID == "":
		return entities.Negotiation{}, fmt.Errorf("%w: entity_id is required", ErrValidation)
	case !p.EntityType.Valid():
		return entities.Negotiation{}, fmt.Errorf("%w: unknown entity_type %q", ErrValidation, p.EntityType)
	case p.BuyerID == "" || p.SellerID == "":
		return entities.Negotiation{}, fmt.Errorf("%w: buyer_id and seller_id are required", ErrValidation)
	case p.BuyerID == p.SellerID:
		return entities.Negotiation{}, fmt.Errorf("%w: buyer and seller must differ", ErrValidation)
	case p.BuyerID == entities.SystemSenderID || p.SellerID == entities.SystemSenderID:
		return entities.Negotiation{}, fmt.Errorf("%w: %q is reserved", ErrValidation, entities.SystemSenderID)
	case p.InitialOffer.IsNegative():
		return entities.Negotiation{}, fmt.Errorf("%w: offer must not be negative", ErrValidation)
	}

	now := m.Now()
	return entities.Negotiation{
		ID:           DeriveID(p.EntityID, p.BuyerID, p.SellerID),
		EntityID:     p.EntityID,
		EntityType:   p.EntityType,
		BuyerID:      p.BuyerID,
		SellerID:     p.SellerID,
		CurrentOffer: p.InitialOffer,
		Status:       entities.NegotiationStatusStarted,
		Messages:     []entities.Message{},
		CreatedAt:    now,
		UpdatedAt:    now,
		Sequence:     m.NewID(),
	}, nil
}

// SendMessage appends free text from a participant. Chat stays open until the
// negotiation is finalized or withdrawn.
func (m *Machine) SendMessage(n *entities.Negotiation, senderID, text, idempotencyKey string) (entities.Message, error) {
	role, err := participantRole(n, senderID)
	if err != nil {
		return entities.Message{}, err
	}
	if n.Status.IsTerminal() {
		return entities.Message{}, fmt.Errorf("%w: negotiation is %s", ErrInvalidState, n.Status)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Message{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	return m.append(n, entities.Message{
		SenderID:       senderID,
		SenderRole:     role,
		SenderName:     visibility.Pseudonym(n, senderID),
		Text:           text,
		IdempotencyKey: idempotencyKey,
	}), nil
}

// SendQuote prices the proposal, appends it as the next quote version and
// makes its final price the current offer.
func (m *Machine) SendQuote(n *entities.Negotiation, senderID string, p QuoteProposal, idempotencyKey string) (entities.Message, error) {
	role, err := participantRole(n, senderID)
	if err != nil {
		return entities.Message{}, err
	}
	if !n.Status.IsNegotiating() {
		return entities.Message{}, fmt.Errorf("%w: quotes are closed while %s", ErrInvalidState, n.Status)
	}

	b, err := quote.Calculate(p.Input)
	if err != nil {
		return entities.Message{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := advance(n, entities.NegotiationStatusCounterOffered); err != nil {
		return entities.Message{}, err
	}

	version := n.QuoteCount() + 1
	details := &entities.QuoteDetails{
		ProductName:          p.ProductName,
		Price:                p.Input.Price,
		Quantity:             p.Input.Quantity,
		Discount:             p.Input.Discount,
		VisitRequired:        p.Input.VisitRequired,
		VisitCharge:          p.Input.VisitCharge,
		VisitNotes:           p.VisitNotes,
		InstallationRequired: p.Input.InstallationRequired,
		InstallationCharge:   p.Input.InstallationCharge,
		InstallationNotes:    p.InstallationNotes,
		OtherCharges:         p.Input.OtherCharges,
		OtherChargesRemark:   p.OtherChargesRemark,
		GSTPercent:           p.Input.GSTPercent,
		DeliveryDays:         p.DeliveryDays,
		InstallationTime:     p.InstallationTime,
		TermsAndConditions:   p.TermsAndConditions,
		BaseTotal:            b.BaseTotal,
		Extras:               b.Extras,
		Subtotal:             b.Subtotal,
		GSTAmount:            b.GSTAmount,
		FinalPrice:           b.FinalPrice,
		Version:              version,
	}

	text := strings.TrimSpace(p.Notes)
	if text == "" {
		text = fmt.Sprintf("Quote v%d: %s", version, b.FinalPrice.StringFixed(2))
	}

	n.CurrentOffer = b.FinalPrice
	return m.append(n, entities.Message{
		SenderID:       senderID,
		SenderRole:     role,
		SenderName:     visibility.Pseudonym(n, senderID),
		Text:           text,
		IsQuote:        true,
		QuoteDetails:   details,
		IdempotencyKey: idempotencyKey,
	}), nil
}

// Accept closes the quote rounds on the current offer.
func (m *Machine) Accept(n *entities.Negotiation, actorID string) (entities.Message, error) {
	if _, err := participantRole(n, actorID); err != nil {
		return entities.Message{}, err
	}
	if err := advance(n, entities.NegotiationStatusAccepted); err != nil {
		return entities.Message{}, err
	}
	text := fmt.Sprintf("%s accepted the offer of %s. Both parties must pay the governance fee to reveal identities.",
		visibility.Pseudonym(n, actorID), n.CurrentOffer.StringFixed(2))
	return m.append(n, systemMessage(text)), nil
}

// CheckGovernanceFee returns the role payerID would pay for, failing when
// the fee cannot be taken right now. Nothing is mutated.
func (m *Machine) CheckGovernanceFee(n *entities.Negotiation, payerID string) (entities.PartyRole, error) {
	role, err := participantRole(n, payerID)
	if err != nil {
		return "", err
	}
	switch n.Status {
	case entities.NegotiationStatusAccepted,
		entities.NegotiationStatusBuyerPaymentDone,
		entities.NegotiationStatusSellerPaymentDone:
	default:
		return "", fmt.Errorf("%w: governance fee cannot be paid while %s", ErrInvalidState, n.Status)
	}
	if paymentRef(n, role) != "" {
		return "", fmt.Errorf("%w: %s governance fee already recorded", ErrInvalidState, strings.ToLower(string(role)))
	}
	return role, nil
}

// RecordGovernanceFee stores the payment reference for payerID's role. When
// the other fee is already on record the negotiation unlocks directly.
func (m *Machine) RecordGovernanceFee(n *entities.Negotiation, payerID, ref string) ([]entities.Message, error) {
	role, err := m.CheckGovernanceFee(n, payerID)
	if err != nil {
		return nil, err
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: payment reference is required", ErrValidation)
	}

	setPaymentRef(n, role, ref)

	target := entities.NegotiationStatusBuyerPaymentDone
	if role == entities.PartyRoleSeller {
		target = entities.NegotiationStatusSellerPaymentDone
	}
	if n.BuyerPaymentRef != "" && n.SellerPaymentRef != "" {
		target = entities.NegotiationStatusAdminVerified
	}
	if err := advance(n, target); err != nil {
		setPaymentRef(n, role, "")
		return nil, err
	}

	out := []entities.Message{
		m.append(n, systemMessage(visibility.Pseudonym(n, payerID)+" paid the governance fee.")),
	}
	if n.Status == entities.NegotiationStatusAdminVerified {
		out = append(out, m.append(n, systemMessage("Both governance fees received. Identities are now visible.")))
	}
	return out, nil
}

// Finalize closes an unlocked negotiation. A participant or the platform
// administrator may do it.
func (m *Machine) Finalize(n *entities.Negotiation, actorID string) (entities.Message, error) {
	if actorID != entities.SystemSenderID {
		if _, err := participantRole(n, actorID); err != nil {
			return entities.Message{}, err
		}
	}
	if err := advance(n, entities.NegotiationStatusFinalized); err != nil {
		return entities.Message{}, err
	}
	return m.append(n, systemMessage("Negotiation finalized.")), nil
}

// Withdraw rejects the negotiation on behalf of either party.
func (m *Machine) Withdraw(n *entities.Negotiation, actorID, reason string) (entities.Message, error) {
	if _, err := participantRole(n, actorID); err != nil {
		return entities.Message{}, err
	}
	name := visibility.Pseudonym(n, actorID)
	if err := advance(n, entities.NegotiationStatusRejected); err != nil {
		return entities.Message{}, err
	}
	text := name + " withdrew from the negotiation."
	if reason = strings.TrimSpace(reason); reason != "" {
		text = fmt.Sprintf("%s withdrew from the negotiation: %s", name, reason)
	}
	return m.append(n, systemMessage(text)), nil
}

// UpdateOffer replaces the current offer while quotes are still open. It
// reports whether the value changed; restating the current offer is allowed
// in any status.
func (m *Machine) UpdateOffer(n *entities.Negotiation, offer decimal.Decimal) (bool, error) {
	if offer.IsNegative() {
		return false, fmt.Errorf("%w: offer must not be negative", ErrValidation)
	}
	if n.CurrentOffer.Equal(offer) {
		return false, nil
	}
	if !n.Status.IsNegotiating() {
		return false, fmt.Errorf("%w: offer cannot change while %s", ErrInvalidState, n.Status)
	}
	n.CurrentOffer = offer
	n.UpdatedAt = m.timestamp(n)
	return true, nil
}

// RequestStatus handles a status carried by a start request. Asking for the
// current status is a no-op; ACCEPTED and REJECTED map to Accept and
// Withdraw; every other status is only reachable through its own operation.
func (m *Machine) RequestStatus(n *entities.Negotiation, actorID string, status entities.NegotiationStatus) ([]entities.Message, error) {
	if status == n.Status {
		return nil, nil
	}
	switch status {
	case entities.NegotiationStatusAccepted:
		msg, err := m.Accept(n, actorID)
		if err != nil {
			return nil, err
		}
		return []entities.Message{msg}, nil
	case entities.NegotiationStatusRejected:
		msg, err := m.Withdraw(n, actorID, "")
		if err != nil {
			return nil, err
		}
		return []entities.Message{msg}, nil
	}
	return nil, fmt.Errorf("%w: status %s cannot be requested directly", ErrInvalidState, status)
}

func (m *Machine) append(n *entities.Negotiation, msg entities.Message) entities.Message {
	msg.ID = m.NewID()
	msg.Timestamp = m.timestamp(n)
	n.Messages = append(n.Messages, msg)
	n.UpdatedAt = msg.Timestamp
	return msg
}

// timestamp never goes behind the newest message, so history order and
// timestamp order agree even across clock skew between instances.
func (m *Machine) timestamp(n *entities.Negotiation) time.Time {
	now := m.Now()
	if last := n.LastTimestamp(); now.Before(last) {
		return last
	}
	return now
}

func systemMessage(text string) entities.Message {
	return entities.Message{
		SenderID:   entities.SystemSenderID,
		SenderRole: entities.PartyRoleSystem,
		SenderName: "System",
		Text:       text,
	}
}

func participantRole(n *entities.Negotiation, userID string) (entities.PartyRole, error) {
	role, ok := n.RoleOf(userID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotAParticipant, userID)
	}
	return role, nil
}

func paymentRef(n *entities.Negotiation, role entities.PartyRole) string {
	if role == entities.PartyRoleBuyer {
		return n.BuyerPaymentRef
	}
	return n.SellerPaymentRef
}

func setPaymentRef(n *entities.Negotiation, role entities.PartyRole, ref string) {
	if role == entities.PartyRoleBuyer {
		n.BuyerPaymentRef = ref
	} else {
		n.SellerPaymentRef = ref
	}
}
