package repository

import (
	"context"
	"errors"
	"time"

	"fundilink/internal/domain/entities"
	"fundilink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPayoutMethodsTableName = "payout_methods"
	payoutMethodsProviderIDIndex  = "provider_id-index"
)

type payoutMethodItem struct {
	ID                   string `dynamodbav:"id"`
	ProviderID           string `dynamodbav:"provider_id"`
	Type                 string `dynamodbav:"type"`
	AccountNumber        string `dynamodbav:"account_number"`
	BankCode             string `dynamodbav:"bank_code,omitempty"`
	AccountName          string `dynamodbav:"account_name,omitempty"`
	IsDefault            bool   `dynamodbav:"is_default"`
	PaystackSubaccountID string `dynamodbav:"paystack_subaccount_id,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// PayoutMethodDynamoRepository persists PayoutMethod entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_id-index (PK: provider_id)
//
// UnsetDefaults queries the GSI then updates each default row. Providers
// hold a handful of methods at most, so the fan-out stays tiny.

type PayoutMethodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutMethodRepository = (*PayoutMethodDynamoRepository)(nil)

func NewPayoutMethodDynamoRepository(ddb *dynamodb.Client) *PayoutMethodDynamoRepository {
	return &PayoutMethodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUT_METHODS_TABLE", defaultPayoutMethodsTableName),
	}
}

func (r *PayoutMethodDynamoRepository) Create(ctx context.Context, m entities.PayoutMethod) (entities.PayoutMethod, error) {
	av, err := attributevalue.MarshalMap(toPayoutMethodItem(m))
	if err != nil {
		return entities.PayoutMethod{}, err
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
		return entities.PayoutMethod{}, err
	}
	return m, nil
}

func (r *PayoutMethodDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.PayoutMethod, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutMethodsProviderIDIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PayoutMethod, 0, len(out.Items))
	for _, raw := range out.Items {
		var it payoutMethodItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPayoutMethodItem(it))
	}
	return items, nil
}

func (r *PayoutMethodDynamoRepository) GetDefaultByProviderID(ctx context.Context, providerID string) (entities.PayoutMethod, error) {
	methods, err := r.ListByProviderID(ctx, providerID)
	if err != nil {
		return entities.PayoutMethod{}, err
	}
	for _, m := range methods {
		if m.IsDefault {
			return m, nil
		}
	}
	return entities.PayoutMethod{}, nil
}

func (r *PayoutMethodDynamoRepository) UnsetDefaults(ctx context.Context, providerID string) error {
	methods, err := r.ListByProviderID(ctx, providerID)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, m := range methods {
		if !m.IsDefault {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: m.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #is_default = :false, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#is_default": "is_default",
				"#updated_at": "updated_at",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

func (r *PayoutMethodDynamoRepository) SetSubaccount(ctx context.Context, id, subaccountCode string) (entities.PayoutMethod, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #subaccount = :subaccount, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":subaccount": &types.AttributeValueMemberS{Value: subaccountCode},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#subaccount": "paystack_subaccount_id",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PayoutMethod{}, nil
		}
		return entities.PayoutMethod{}, err
	}

	var it payoutMethodItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PayoutMethod{}, err
	}
	return fromPayoutMethodItem(it), nil
}

func toPayoutMethodItem(m entities.PayoutMethod) payoutMethodItem {
	return payoutMethodItem{
		ID:                   m.ID,
		ProviderID:           m.ProviderID,
		Type:                 string(m.Type),
		AccountNumber:        m.AccountNumber,
		BankCode:             m.BankCode,
		AccountName:          m.AccountName,
		IsDefault:            m.IsDefault,
		PaystackSubaccountID: m.PaystackSubaccountID,
		CreatedAt:            timeToString(m.CreatedAt),
		UpdatedAt:            timeToString(m.UpdatedAt),
	}
}

func fromPayoutMethodItem(it payoutMethodItem) entities.PayoutMethod {
	return entities.PayoutMethod{
		ID:                   it.ID,
		ProviderID:           it.ProviderID,
		Type:                 entities.PayoutMethodType(it.Type),
		AccountNumber:        it.AccountNumber,
		BankCode:             it.BankCode,
		AccountName:          it.AccountName,
		IsDefault:            it.IsDefault,
		PaystackSubaccountID: it.PaystackSubaccountID,
		CreatedAt:            stringToTime(it.CreatedAt),
		UpdatedAt:            stringToTime(it.UpdatedAt),
	}
}
