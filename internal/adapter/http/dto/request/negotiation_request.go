package request

import (
	"errors"
	"fmt"
	"strings"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/domain/quote"
	"blind_negotiation/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEntityType = errors.New("invalid entity_type")
	ErrInvalidStatus     = errors.New("invalid status")
)

// QuoteRequest is the structured quote form. Amounts accept JSON numbers or
// decimal strings.
type QuoteRequest struct {
	ProductName          string           `json:"product_name"`
	Notes                string           `json:"notes"`
	Price                decimal.Decimal  `json:"price"`
	Quantity             decimal.Decimal  `json:"quantity"`
	Discount             decimal.Decimal  `json:"discount"`
	VisitRequired        bool             `json:"visit_required"`
	VisitCharge          decimal.Decimal  `json:"visit_charge"`
	VisitNotes           string           `json:"visit_notes"`
	InstallationRequired bool             `json:"installation_required"`
	InstallationCharge   decimal.Decimal  `json:"installation_charge"`
	InstallationNotes    string           `json:"installation_notes"`
	OtherCharges         decimal.Decimal  `json:"other_charges"`
	OtherChargesRemark   string           `json:"other_charges_remark"`
	GSTPercent           *decimal.Decimal `json:"gst_percent"`
	DeliveryDays         int              `json:"delivery_days"`
	InstallationTime     string           `json:"installation_time"`
	TermsAndConditions   string           `json:"terms_and_conditions"`
}

// ToProposal converts the form. A missing gst_percent defaults to 18.
func (r QuoteRequest) ToProposal() negotiation.QuoteProposal {
	gst := decimal.NewFromInt(18)
	if r.GSTPercent != nil {
		gst = *r.GSTPercent
	}
	return negotiation.QuoteProposal{
		Input: quote.Input{
			Price:                r.Price,
			Quantity:             r.Quantity,
			Discount:             r.Discount,
			VisitRequired:        r.VisitRequired,
			VisitCharge:          r.VisitCharge,
			InstallationRequired: r.InstallationRequired,
			InstallationCharge:   r.InstallationCharge,
			OtherCharges:         r.OtherCharges,
			GSTPercent:           gst,
		},
		ProductName:        strings.TrimSpace(r.ProductName),
		Notes:              r.Notes,
		VisitNotes:         r.VisitNotes,
		InstallationNotes:  r.InstallationNotes,
		OtherChargesRemark: r.OtherChargesRemark,
		DeliveryDays:       r.DeliveryDays,
		InstallationTime:   r.InstallationTime,
		TermsAndConditions: r.TermsAndConditions,
	}
}

// StartMessageRequest is a message bundled in a start request. A non-nil
// quote makes it a quote message.
type StartMessageRequest struct {
	SenderID       string        `json:"sender_id"`
	Text           string        `json:"text"`
	IdempotencyKey string        `json:"idempotency_key"`
	Quote          *QuoteRequest `json:"quote"`
}

// StartNegotiationRequest creates the negotiation for the party triple or
// updates the existing one.
type StartNegotiationRequest struct {
	ActorID    string                `json:"actor_id"`
	EntityID   string                `json:"entity_id" binding:"required"`
	EntityType string                `json:"entity_type" binding:"required"`
	BuyerID    string                `json:"buyer_id" binding:"required"`
	SellerID   string                `json:"seller_id" binding:"required"`
	Offer      *decimal.Decimal      `json:"offer"`
	Status     string                `json:"status"`
	Messages   []StartMessageRequest `json:"messages"`
}

func (r StartNegotiationRequest) ToStartInput() (usecase.StartInput, error) {
	entityType := entities.EntityType(strings.ToUpper(strings.TrimSpace(r.EntityType)))
	if !entityType.Valid() {
		return usecase.StartInput{}, fmt.Errorf("%w: %q", ErrInvalidEntityType, r.EntityType)
	}

	in := usecase.StartInput{
		ActorID:    r.ActorID,
		EntityID:   r.EntityID,
		EntityType: entityType,
		BuyerID:    r.BuyerID,
		SellerID:   r.SellerID,
		Offer:      r.Offer,
	}

	if s := strings.ToUpper(strings.TrimSpace(r.Status)); s != "" {
		status, err := parseStatus(s)
		if err != nil {
			return usecase.StartInput{}, err
		}
		in.Status = &status
	}

	for _, m := range r.Messages {
		mi := usecase.MessageInput{SenderID: m.SenderID, Text: m.Text, IdempotencyKey: m.IdempotencyKey}
		if m.Quote != nil {
			p := m.Quote.ToProposal()
			mi.Quote = &p
		}
		in.Messages = append(in.Messages, mi)
	}
	return in, nil
}

func parseStatus(s string) (entities.NegotiationStatus, error) {
	switch status := entities.NegotiationStatus(s); status {
	case entities.NegotiationStatusStarted,
		entities.NegotiationStatusCounterOffered,
		entities.NegotiationStatusAccepted,
		entities.NegotiationStatusBuyerPaymentDone,
		entities.NegotiationStatusSellerPaymentDone,
		entities.NegotiationStatusAdminVerified,
		entities.NegotiationStatusFinalized,
		entities.NegotiationStatusRejected:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type SendMessageRequest struct {
	SenderID       string `json:"sender_id" binding:"required"`
	Text           string `json:"text" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

type SendQuoteRequest struct {
	SenderID       string `json:"sender_id" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
	QuoteRequest
}

// ActorRequest carries the acting user for accept and finalize.
type ActorRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

type WithdrawRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Reason  string `json:"reason"`
}
