package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentMethodsTableName = "payment_methods"

type paymentMethodItem struct {
	ID          string `dynamodbav:"id"`
	Seq         int64  `dynamodbav:"seq"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Enabled     bool   `dynamodbav:"enabled"`
}

// PaymentMethodDynamoRepository persists payment methods in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PaymentMethodDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb DynamoAPI) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_METHODS_TABLE", defaultPaymentMethodsTableName),
	}
}

func (r *PaymentMethodDynamoRepository) Create(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	it := paymentMethodItem{ID: m.ID, Seq: nextSeq(), Name: m.Name, Description: m.Description, Enabled: m.Enabled}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.PaymentMethod{}, fmt.Errorf("payment method %s: %w", m.ID, err)
	}
	return m, nil
}

func (r *PaymentMethodDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	var it paymentMethodItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PaymentMethod{}, err
	}
	return fromPaymentMethodItem(it), nil
}

func (r *PaymentMethodDynamoRepository) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	items, err := scanAll[paymentMethodItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, func(a, b paymentMethodItem) int { return cmp.Compare(a.Seq, b.Seq) })
	out := make([]entities.PaymentMethod, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentMethodItem(it))
	}
	return out, nil
}

func (r *PaymentMethodDynamoRepository) SetEnabled(ctx context.Context, id string, enabled bool) (entities.PaymentMethod, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #enabled = :enabled"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":enabled": &types.AttributeValueMemberBOOL{Value: enabled},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#enabled": "enabled",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentMethod{}, nil
		}
		return entities.PaymentMethod{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentMethod{}, nil
	}
	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentMethod{}, err
	}
	return fromPaymentMethodItem(it), nil
}

func (r *PaymentMethodDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func fromPaymentMethodItem(it paymentMethodItem) entities.PaymentMethod {
	return entities.PaymentMethod{ID: it.ID, Name: it.Name, Description: it.Description, Enabled: it.Enabled}
}
