package response

import (
	"time"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/visibility"
	"blind_negotiation/internal/usecase"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type QuoteDetailsResponse struct {
	ProductName          string `json:"product_name"`
	Price                string `json:"price"`
	Quantity             string `json:"quantity"`
	Discount             string `json:"discount"`
	VisitRequired        bool   `json:"visit_required"`
	VisitCharge          string `json:"visit_charge"`
	VisitNotes           string `json:"visit_notes,omitempty"`
	InstallationRequired bool   `json:"installation_required"`
	InstallationCharge   string `json:"installation_charge"`
	InstallationNotes    string `json:"installation_notes,omitempty"`
	OtherCharges         string `json:"other_charges"`
	OtherChargesRemark   string `json:"other_charges_remark,omitempty"`
	GSTPercent           string `json:"gst_percent"`
	DeliveryDays         int    `json:"delivery_days,omitempty"`
	InstallationTime     string `json:"installation_time,omitempty"`
	TermsAndConditions   string `json:"terms_and_conditions,omitempty"`
	BaseTotal            string `json:"base_total"`
	Extras               string `json:"extras"`
	Subtotal             string `json:"subtotal"`
	GSTAmount            string `json:"gst_amount"`
	FinalPrice           string `json:"final_price"`
	Version              int    `json:"version"`
}

func FromQuoteDetails(q *entities.QuoteDetails) *QuoteDetailsResponse {
	if q == nil {
		return nil
	}
	return &QuoteDetailsResponse{
		ProductName:          q.ProductName,
		Price:                money(q.Price),
		Quantity:             q.Quantity.String(),
		Discount:             money(q.Discount),
		VisitRequired:        q.VisitRequired,
		VisitCharge:          money(q.VisitCharge),
		VisitNotes:           q.VisitNotes,
		InstallationRequired: q.InstallationRequired,
		InstallationCharge:   money(q.InstallationCharge),
		InstallationNotes:    q.InstallationNotes,
		OtherCharges:         money(q.OtherCharges),
		OtherChargesRemark:   q.OtherChargesRemark,
		GSTPercent:           q.GSTPercent.String(),
		DeliveryDays:         q.DeliveryDays,
		InstallationTime:     q.InstallationTime,
		TermsAndConditions:   q.TermsAndConditions,
		BaseTotal:            money(q.BaseTotal),
		Extras:               money(q.Extras),
		Subtotal:             money(q.Subtotal),
		GSTAmount:            money(q.GSTAmount),
		FinalPrice:           money(q.FinalPrice),
		Version:              q.Version,
	}
}

// EventMessageResponse is a message as broadcast: send-time pseudonym only.
type EventMessageResponse struct {
	ID           string                `json:"id"`
	SenderRole   string                `json:"sender_role"`
	SenderName   string                `json:"sender_name"`
	Text         string                `json:"text"`
	Timestamp    time.Time             `json:"timestamp"`
	IsQuote      bool                  `json:"is_quote"`
	QuoteDetails *QuoteDetailsResponse `json:"quote_details,omitempty"`
}

type NegotiationUpdateResponse struct {
	Type          string                 `json:"type"`
	NegotiationID string                 `json:"negotiation_id"`
	Status        string                 `json:"status"`
	CurrentOffer  string                 `json:"current_offer"`
	Version       int64                  `json:"version"`
	Messages      []EventMessageResponse `json:"messages"`
	Duplicate     bool                   `json:"duplicate,omitempty"`
	OccurredAt    time.Time              `json:"occurred_at"`
}

func FromNegotiationUpdate(u entities.NegotiationUpdate) NegotiationUpdateResponse {
	msgs := make([]EventMessageResponse, 0, len(u.Messages))
	for _, m := range u.Messages {
		msgs = append(msgs, EventMessageResponse{
			ID:           m.ID,
			SenderRole:   string(m.SenderRole),
			SenderName:   m.SenderName,
			Text:         m.Text,
			Timestamp:    m.Timestamp,
			IsQuote:      m.IsQuote,
			QuoteDetails: FromQuoteDetails(m.QuoteDetails),
		})
	}
	return NegotiationUpdateResponse{
		Type:          u.Type,
		NegotiationID: u.NegotiationID,
		Status:        string(u.Status),
		CurrentOffer:  money(u.CurrentOffer),
		Version:       u.Version,
		Messages:      msgs,
		Duplicate:     u.Duplicate,
		OccurredAt:    u.OccurredAt,
	}
}

type MessageViewResponse struct {
	ID           string                     `json:"id"`
	Sender       visibility.DisplayIdentity `json:"sender"`
	Text         string                     `json:"text"`
	Timestamp    time.Time                  `json:"timestamp"`
	IsQuote      bool                       `json:"is_quote"`
	QuoteDetails *QuoteDetailsResponse      `json:"quote_details,omitempty"`
}

type StatsResponse struct {
	Rounds           int    `json:"rounds"`
	BestOffer        string `json:"best_offer"`
	GovernanceStatus string `json:"governance_status"`
}

// NegotiationViewResponse is the per-viewer negotiation. Counterpart contact
// fields are only filled once identities are unlocked.
type NegotiationViewResponse struct {
	ID            string                     `json:"id"`
	EntityID      string                     `json:"entity_id"`
	EntityType    string                     `json:"entity_type"`
	Status        string                     `json:"status"`
	CurrentOffer  string                     `json:"current_offer"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
	Version       int64                      `json:"version"`
	ViewerRole    string                     `json:"viewer_role"`
	Viewer        visibility.DisplayIdentity `json:"viewer"`
	Counterpart   visibility.DisplayIdentity `json:"counterpart"`
	Unlocked      bool                       `json:"unlocked"`
	BuyerFeePaid  bool                       `json:"buyer_fee_paid"`
	SellerFeePaid bool                       `json:"seller_fee_paid"`
	Messages      []MessageViewResponse      `json:"messages"`
	Stats         StatsResponse              `json:"stats"`
}

func FromNegotiationView(v visibility.NegotiationView) NegotiationViewResponse {
	msgs := make([]MessageViewResponse, 0, len(v.Messages))
	for _, m := range v.Messages {
		msgs = append(msgs, MessageViewResponse{
			ID:           m.ID,
			Sender:       m.Sender,
			Text:         m.Text,
			Timestamp:    m.Timestamp,
			IsQuote:      m.IsQuote,
			QuoteDetails: FromQuoteDetails(m.QuoteDetails),
		})
	}
	return NegotiationViewResponse{
		ID:            v.ID,
		EntityID:      v.EntityID,
		EntityType:    string(v.EntityType),
		Status:        string(v.Status),
		CurrentOffer:  money(v.CurrentOffer),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		Version:       v.Version,
		ViewerRole:    string(v.ViewerRole),
		Viewer:        v.Viewer,
		Counterpart:   v.Counterpart,
		Unlocked:      v.Unlocked,
		BuyerFeePaid:  v.BuyerFeePaid,
		SellerFeePaid: v.SellerFeePaid,
		Messages:      msgs,
		Stats: StatsResponse{
			Rounds:           v.Stats.Rounds,
			BestOffer:        money(v.Stats.BestOffer),
			GovernanceStatus: v.Stats.GovernanceStatus,
		},
	}
}

func FromNegotiationViews(views []visibility.NegotiationView) []NegotiationViewResponse {
	out := make([]NegotiationViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromNegotiationView(v))
	}
	return out
}

type QuoteDraftResponse struct {
	ProductName        string `json:"product_name"`
	Price              string `json:"price"`
	Quantity           string `json:"quantity"`
	Discount           string `json:"discount"`
	VisitCharge        string `json:"visit_charge"`
	InstallationCharge string `json:"installation_charge"`
	OtherCharges       string `json:"other_charges"`
	GSTPercent         string `json:"gst_percent"`
	DeliveryDays       int    `json:"delivery_days"`
	InstallationTime   string `json:"installation_time"`
	TermsAndConditions string `json:"terms_and_conditions"`
	Source             string `json:"source"`
}

func FromQuoteDraft(d usecase.QuoteDraft) QuoteDraftResponse {
	return QuoteDraftResponse{
		ProductName:        d.ProductName,
		Price:              money(d.Price),
		Quantity:           d.Quantity.String(),
		Discount:           money(d.Discount),
		VisitCharge:        money(d.VisitCharge),
		InstallationCharge: money(d.InstallationCharge),
		OtherCharges:       money(d.OtherCharges),
		GSTPercent:         d.GSTPercent.String(),
		DeliveryDays:       d.DeliveryDays,
		InstallationTime:   d.InstallationTime,
		TermsAndConditions: d.TermsAndConditions,
		Source:             d.Source,
	}
}
