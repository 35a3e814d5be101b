package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const EventNegotiationUpdated = "negotiation-updated"

// EventMessage is the broadcast form of a Message. It carries the send-time
// pseudonym and the sender role, never the sender id.
type EventMessage struct {
	ID           string        `json:"id"`
	SenderRole   PartyRole     `json:"sender_role"`
	SenderName   string        `json:"sender_name"`
	Text         string        `json:"text"`
	Timestamp    time.Time     `json:"timestamp"`
	IsQuote      bool          `json:"is_quote"`
	QuoteDetails *QuoteDetails `json:"quote_details,omitempty"`
}

// NegotiationUpdate is the outcome of a mutating operation. The same payload
// is published to realtime subscribers: only the newly appended messages are
// included, the full history is recovered through a read.
type NegotiationUpdate struct {
	Type          string            `json:"type"`
	NegotiationID string            `json:"negotiation_id"`
	Status        NegotiationStatus `json:"status"`
	CurrentOffer  decimal.Decimal   `json:"current_offer"`
	Version       int64             `json:"version"`
	Messages      []EventMessage    `json:"messages"`
	// Duplicate is set when an idempotent retry matched an existing message.
	Duplicate  bool      `json:"duplicate,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func ToEventMessage(m Message) EventMessage {
	return EventMessage{
		ID:           m.ID,
		SenderRole:   m.SenderRole,
		SenderName:   m.SenderName,
		Text:         m.Text,
		Timestamp:    m.Timestamp,
		IsQuote:      m.IsQuote,
		QuoteDetails: m.QuoteDetails,
	}
}

// NewNegotiationUpdate builds the update for n with the given appended messages.
func NewNegotiationUpdate(n Negotiation, appended []Message, at time.Time) NegotiationUpdate {
	msgs := make([]EventMessage, 0, len(appended))
	for _, m := range appended {
		msgs = append(msgs, ToEventMessage(m))
	}
	return NegotiationUpdate{
		Type:          EventNegotiationUpdated,
		NegotiationID: n.ID,
		Status:        n.Status,
		CurrentOffer:  n.CurrentOffer,
		Version:       n.Version,
		Messages:      msgs,
		OccurredAt:    at,
	}
}
