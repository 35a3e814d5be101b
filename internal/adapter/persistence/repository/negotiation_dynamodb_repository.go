package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNegotiationsTableName = "negotiations"
	negotiationsBuyerIndex       = "buyer_id-index"
	negotiationsSellerIndex      = "seller_id-index"
)

type negotiationItem struct {
	ID               string        `dynamodbav:"id"`
	EntityID         string        `dynamodbav:"entity_id"`
	EntityType       string        `dynamodbav:"entity_type"`
	BuyerID          string        `dynamodbav:"buyer_id"`
	SellerID         string        `dynamodbav:"seller_id"`
	CurrentOffer     string        `dynamodbav:"current_offer"`
	Status           string        `dynamodbav:"status"`
	Messages         []messageItem `dynamodbav:"messages"`
	CreatedAt        string        `dynamodbav:"created_at"`
	UpdatedAt        string        `dynamodbav:"updated_at"`
	Sequence         string        `dynamodbav:"sequence"`
	BuyerPaymentRef  string        `dynamodbav:"buyer_payment_ref,omitempty"`
	SellerPaymentRef string        `dynamodbav:"seller_payment_ref,omitempty"`
	Version          int64         `dynamodbav:"version"`
}

type messageItem struct {
	ID             string     `dynamodbav:"id"`
	SenderID       string     `dynamodbav:"sender_id"`
	SenderRole     string     `dynamodbav:"sender_role"`
	SenderName     string     `dynamodbav:"sender_name"`
	Text           string     `dynamodbav:"text"`
	Timestamp      string     `dynamodbav:"timestamp"`
	IsQuote        bool       `dynamodbav:"is_quote"`
	Quote          *quoteItem `dynamodbav:"quote_details,omitempty"`
	IdempotencyKey string     `dynamodbav:"idempotency_key,omitempty"`
}

type quoteItem struct {
	ProductName          string `dynamodbav:"product_name,omitempty"`
	Price                string `dynamodbav:"price"`
	Quantity             string `dynamodbav:"quantity"`
	Discount             string `dynamodbav:"discount"`
	VisitRequired        bool   `dynamodbav:"visit_required"`
	VisitCharge          string `dynamodbav:"visit_charge"`
	VisitNotes           string `dynamodbav:"visit_notes,omitempty"`
	InstallationRequired bool   `dynamodbav:"installation_required"`
	InstallationCharge   string `dynamodbav:"installation_charge"`
	InstallationNotes    string `dynamodbav:"installation_notes,omitempty"`
	OtherCharges         string `dynamodbav:"other_charges"`
	OtherChargesRemark   string `dynamodbav:"other_charges_remark,omitempty"`
	GSTPercent           string `dynamodbav:"gst_percent"`
	DeliveryDays         int    `dynamodbav:"delivery_days,omitempty"`
	InstallationTime     string `dynamodbav:"installation_time,omitempty"`
	TermsAndConditions   string `dynamodbav:"terms_and_conditions,omitempty"`
	BaseTotal            string `dynamodbav:"base_total"`
	Extras               string `dynamodbav:"extras"`
	Subtotal             string `dynamodbav:"subtotal"`
	GSTAmount            string `dynamodbav:"gst_amount"`
	FinalPrice           string `dynamodbav:"final_price"`
	Version              int    `dynamodbav:"version"`
}

// NegotiationDynamoRepository persists Negotiation records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id, SK: created_at)
//   - GSI: seller_id-index (PK: seller_id, SK: created_at)
//
// The whole record, message log included, is one item. Writes are
// conditional on the stored version.
//
// TODO: move messages to their own items (PK id, SK message id) before long
// negotiations approach the 400KB item limit.

type NegotiationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb dynamoAPI, tableName string) *NegotiationDynamoRepository {
	return &NegotiationDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "NEGOTIATIONS_TABLE", defaultNegotiationsTableName),
	}
}

func (r *NegotiationDynamoRepository) Load(ctx context.Context, id string) (entities.Negotiation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Negotiation{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationItem(it)
}

// Save writes n with version expectedVersion+1. expectedVersion 0 only
// succeeds when the id is not stored yet.
func (r *NegotiationDynamoRepository) Save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	n.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toNegotiationItem(n))
	if err != nil {
		return entities.Negotiation{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expectedVersion == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		in.ConditionExpression = aws.String("#version = :expected")
		in.ExpressionAttributeNames = map[string]string{"#version": "version"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Negotiation{}, fmt.Errorf("%w: negotiation %s is no longer at version %d", negotiation.ErrConflict, n.ID, expectedVersion)
		}
		return entities.Negotiation{}, err
	}
	return n, nil
}

func (r *NegotiationDynamoRepository) ListByParty(ctx context.Context, userID string) ([]entities.Negotiation, error) {
	seen := make(map[string]bool)
	var out []entities.Negotiation
	for _, idx := range []struct{ name, attr string }{
		{negotiationsBuyerIndex, "buyer_id"},
		{negotiationsSellerIndex, "seller_id"},
	} {
		items, err := r.queryIndex(ctx, idx.name, idx.attr, userID)
		if err != nil {
			return nil, err
		}
		for _, n := range items {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NegotiationDynamoRepository) queryIndex(ctx context.Context, index, attr, userID string) ([]entities.Negotiation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#pk = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	var items []entities.Negotiation
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it negotiationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			n, err := fromNegotiationItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, n)
		}
	}
	return items, nil
}

func toNegotiationItem(n entities.Negotiation) negotiationItem {
	msgs := make([]messageItem, 0, len(n.Messages))
	for _, m := range n.Messages {
		msgs = append(msgs, messageItem{
			ID:             m.ID,
			SenderID:       m.SenderID,
			SenderRole:     string(m.SenderRole),
			SenderName:     m.SenderName,
			Text:           m.Text,
			Timestamp:      formatTime(m.Timestamp),
			IsQuote:        m.IsQuote,
			Quote:          toQuoteItem(m.QuoteDetails),
			IdempotencyKey: m.IdempotencyKey,
		})
	}
	return negotiationItem{
		ID:               n.ID,
		EntityID:         n.EntityID,
		EntityType:       string(n.EntityType),
		BuyerID:          n.BuyerID,
		SellerID:         n.SellerID,
		CurrentOffer:     decimalToString(n.CurrentOffer),
		Status:           string(n.Status),
		Messages:         msgs,
		CreatedAt:        formatTime(n.CreatedAt),
		UpdatedAt:        formatTime(n.UpdatedAt),
		Sequence:         n.Sequence,
		BuyerPaymentRef:  n.BuyerPaymentRef,
		SellerPaymentRef: n.SellerPaymentRef,
		Version:          n.Version,
	}
}

func fromNegotiationItem(it negotiationItem) (entities.Negotiation, error) {
	var d itemDecoder
	msgs := make([]entities.Message, 0, len(it.Messages))
	for _, m := range it.Messages {
		msgs = append(msgs, entities.Message{
			ID:             m.ID,
			SenderID:       m.SenderID,
			SenderRole:     entities.PartyRole(m.SenderRole),
			SenderName:     m.SenderName,
			Text:           m.Text,
			Timestamp:      d.time("messages.timestamp", m.Timestamp),
			IsQuote:        m.IsQuote,
			QuoteDetails:   d.quote(m.Quote),
			IdempotencyKey: m.IdempotencyKey,
		})
	}
	n := entities.Negotiation{
		ID:               it.ID,
		EntityID:         it.EntityID,
		EntityType:       entities.EntityType(it.EntityType),
		BuyerID:          it.BuyerID,
		SellerID:         it.SellerID,
		CurrentOffer:     d.decimal("current_offer", it.CurrentOffer),
		Status:           entities.NegotiationStatus(it.Status),
		Messages:         msgs,
		CreatedAt:        d.time("created_at", it.CreatedAt),
		UpdatedAt:        d.time("updated_at", it.UpdatedAt),
		Sequence:         it.Sequence,
		BuyerPaymentRef:  it.BuyerPaymentRef,
		SellerPaymentRef: it.SellerPaymentRef,
		Version:          it.Version,
	}
	if d.err != nil {
		return entities.Negotiation{}, fmt.Errorf("decode negotiation %s: %w", it.ID, d.err)
	}
	return n, nil
}

func toQuoteItem(q *entities.QuoteDetails) *quoteItem {
	if q == nil {
		return nil
	}
	return &quoteItem{
		ProductName:          q.ProductName,
		Price:                decimalToString(q.Price),
		Quantity:             decimalToString(q.Quantity),
		Discount:             decimalToString(q.Discount),
		VisitRequired:        q.VisitRequired,
		VisitCharge:          decimalToString(q.VisitCharge),
		VisitNotes:           q.VisitNotes,
		InstallationRequired: q.InstallationRequired,
		InstallationCharge:   decimalToString(q.InstallationCharge),
		InstallationNotes:    q.InstallationNotes,
		OtherCharges:         decimalToString(q.OtherCharges),
		OtherChargesRemark:   q.OtherChargesRemark,
		GSTPercent:           decimalToString(q.GSTPercent),
		DeliveryDays:         q.DeliveryDays,
		InstallationTime:     q.InstallationTime,
		TermsAndConditions:   q.TermsAndConditions,
		BaseTotal:            decimalToString(q.BaseTotal),
		Extras:               decimalToString(q.Extras),
		Subtotal:             decimalToString(q.Subtotal),
		GSTAmount:            decimalToString(q.GSTAmount),
		FinalPrice:           decimalToString(q.FinalPrice),
		Version:              q.Version,
	}
}

func (d *itemDecoder) quote(q *quoteItem) *entities.QuoteDetails {
	if q == nil {
		return nil
	}
	return &entities.QuoteDetails{
		ProductName:          q.ProductName,
		Price:                d.decimal("quote.price", q.Price),
		Quantity:             d.decimal("quote.quantity", q.Quantity),
		Discount:             d.decimal("quote.discount", q.Discount),
		VisitRequired:        q.VisitRequired,
		VisitCharge:          d.decimal("quote.visit_charge", q.VisitCharge),
		VisitNotes:           q.VisitNotes,
		InstallationRequired: q.InstallationRequired,
		InstallationCharge:   d.decimal("quote.installation_charge", q.InstallationCharge),
		InstallationNotes:    q.InstallationNotes,
		OtherCharges:         d.decimal("quote.other_charges", q.OtherCharges),
		OtherChargesRemark:   q.OtherChargesRemark,
		GSTPercent:           d.decimal("quote.gst_percent", q.GSTPercent),
		DeliveryDays:         q.DeliveryDays,
		InstallationTime:     q.InstallationTime,
		TermsAndConditions:   q.TermsAndConditions,
		BaseTotal:            d.decimal("quote.base_total", q.BaseTotal),
		Extras:               d.decimal("quote.extras", q.Extras),
		Subtotal:             d.decimal("quote.subtotal", q.Subtotal),
		GSTAmount:            d.decimal("quote.gst_amount", q.GSTAmount),
		FinalPrice:           d.decimal("quote.final_price", q.FinalPrice),
		Version:              q.Version,
	}
}
