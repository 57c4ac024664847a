package repository

import (
	"context"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsJobIDIndex       = "job_id-index"
)

type paymentItem struct {
	ID                   string `dynamodbav:"id"`
	JobID                string `dynamodbav:"job_id"`
	CustomerID           string `dynamodbav:"customer_id"`
	ProviderID           string `dynamodbav:"provider_id"`
	Amount               string `dynamodbav:"amount"`
	Currency             string `dynamodbav:"currency"`
	Status               string `dynamodbav:"status"`
	PaymentMethod        string `dynamodbav:"payment_method"`
	PaymentProvider      string `dynamodbav:"payment_provider"`
	Reference            string `dynamodbav:"reference"`
	ProviderReference    string `dynamodbav:"provider_reference,omitempty"`
	PaystackSubaccountID string `dynamodbav:"paystack_subaccount_id,omitempty"`
	IdempotencyKey       string `dynamodbav:"idempotency_key"`

	Metadata map[string]interface{} `dynamodbav:"metadata,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment ledger rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                   p.ID,
		JobID:                p.JobID,
		CustomerID:           p.CustomerID,
		ProviderID:           p.ProviderID,
		Amount:               floatToString(p.Amount),
		Currency:             p.Currency,
		Status:               string(p.Status),
		PaymentMethod:        string(p.PaymentMethod),
		PaymentProvider:      p.PaymentProvider,
		Reference:            p.Reference,
		ProviderReference:    p.ProviderReference,
		PaystackSubaccountID: p.PaystackSubaccountID,
		IdempotencyKey:       p.IdempotencyKey,
		Metadata:             p.Metadata,
		CreatedAt:            timeToString(p.CreatedAt),
		UpdatedAt:            timeToString(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                   it.ID,
		JobID:                it.JobID,
		CustomerID:           it.CustomerID,
		ProviderID:           it.ProviderID,
		Amount:               stringToFloat(it.Amount),
		Currency:             it.Currency,
		Status:               entities.PaymentStatus(it.Status),
		PaymentMethod:        entities.PaymentMethod(it.PaymentMethod),
		PaymentProvider:      it.PaymentProvider,
		Reference:            it.Reference,
		ProviderReference:    it.ProviderReference,
		PaystackSubaccountID: it.PaystackSubaccountID,
		IdempotencyKey:       it.IdempotencyKey,
		Metadata:             it.Metadata,
		CreatedAt:            stringToTime(it.CreatedAt),
		UpdatedAt:            stringToTime(it.UpdatedAt),
	}
}
