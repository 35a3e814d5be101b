package repository

import (
	"context"
	"fmt"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGovernancePaymentsTableName = "governance_payments"
	paymentsNegotiationIDIndex         = "negotiation_id-index"
)

type governancePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	NegotiationID      string                 `dynamodbav:"negotiation_id"`
	PayerID            string                 `dynamodbav:"payer_id"`
	Role               string                 `dynamodbav:"role"`
	Amount             string                 `dynamodbav:"amount"`
	Currency           string                 `dynamodbav:"currency"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// GovernancePaymentDynamoRepository persists GovernancePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: negotiation_id-index (PK: negotiation_id)

type GovernancePaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IGovernancePaymentRepository = (*GovernancePaymentDynamoRepository)(nil)

func NewGovernancePaymentDynamoRepository(ddb dynamoAPI, tableName string) *GovernancePaymentDynamoRepository {
	return &GovernancePaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "GOVERNANCE_PAYMENTS_TABLE", defaultGovernancePaymentsTableName),
	}
}

func (r *GovernancePaymentDynamoRepository) Create(ctx context.Context, p entities.GovernancePayment) (entities.GovernancePayment, error) {
	av, err := attributevalue.MarshalMap(toGovernancePaymentItem(p))
	if err != nil {
		return entities.GovernancePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.GovernancePayment{}, err
	}
	return p, nil
}

func (r *GovernancePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.GovernancePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GovernancePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.GovernancePayment{}, nil
	}

	var it governancePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GovernancePayment{}, err
	}
	return fromGovernancePaymentItem(it)
}

func (r *GovernancePaymentDynamoRepository) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.GovernancePayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsNegotiationIDIndex),
		KeyConditionExpression: aws.String("negotiation_id = :nid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid": &types.AttributeValueMemberS{Value: negotiationID},
		},
	})

	items := make([]entities.GovernancePayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it governancePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			gp, err := fromGovernancePaymentItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, gp)
		}
	}
	return items, nil
}

func toGovernancePaymentItem(p entities.GovernancePayment) governancePaymentItem {
	return governancePaymentItem{
		ID:                 p.ID,
		NegotiationID:      p.NegotiationID,
		PayerID:            p.PayerID,
		Role:               string(p.Role),
		Amount:             decimalToString(p.Amount),
		Currency:           p.Currency,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromGovernancePaymentItem(it governancePaymentItem) (entities.GovernancePayment, error) {
	var d itemDecoder
	p := entities.GovernancePayment{
		ID:                 it.ID,
		NegotiationID:      it.NegotiationID,
		PayerID:            it.PayerID,
		Role:               entities.PartyRole(it.Role),
		Amount:             d.decimal("amount", it.Amount),
		Currency:           it.Currency,
		Date:               d.time("date", it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
	if d.err != nil {
		return entities.GovernancePayment{}, fmt.Errorf("decode governance payment %s: %w", it.ID, d.err)
	}
	return p, nil
}
