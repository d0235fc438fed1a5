package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
)

const defaultPaymentTypesTableName = "payment_types"

type paymentTypeItem struct {
	ID            string `dynamodbav:"id"`
	Seq           int64  `dynamodbav:"seq"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description"`
	DefaultAmount string `dynamodbav:"default_amount,omitempty"`
}

// PaymentTypeDynamoRepository persists payment types in DynamoDB.
// An absent default_amount attribute means the type has no suggested amount.
type PaymentTypeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentTypeRepository = (*PaymentTypeDynamoRepository)(nil)

func NewPaymentTypeDynamoRepository(ddb DynamoAPI) *PaymentTypeDynamoRepository {
	return &PaymentTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_TYPES_TABLE", defaultPaymentTypesTableName),
	}
}

func (r *PaymentTypeDynamoRepository) Create(ctx context.Context, t entities.PaymentType) (entities.PaymentType, error) {
	it := paymentTypeItem{ID: t.ID, Seq: nextSeq(), Name: t.Name, Description: t.Description}
	if t.DefaultAmount != nil {
		it.DefaultAmount = floatToString(*t.DefaultAmount)
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.PaymentType{}, fmt.Errorf("payment type %s: %w", t.ID, err)
	}
	return t, nil
}

func (r *PaymentTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentType, error) {
	var it paymentTypeItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PaymentType{}, err
	}
	return fromPaymentTypeItem(it), nil
}

func (r *PaymentTypeDynamoRepository) List(ctx context.Context) ([]entities.PaymentType, error) {
	items, err := scanAll[paymentTypeItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, func(a, b paymentTypeItem) int { return cmp.Compare(a.Seq, b.Seq) })
	out := make([]entities.PaymentType, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentTypeItem(it))
	}
	return out, nil
}

func (r *PaymentTypeDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func fromPaymentTypeItem(it paymentTypeItem) entities.PaymentType {
	pt := entities.PaymentType{ID: it.ID, Name: it.Name, Description: it.Description}
	if it.DefaultAmount != "" {
		if v, err := strconv.ParseFloat(it.DefaultAmount, 64); err == nil {
			pt.DefaultAmount = &v
		}
	}
	return pt
}
