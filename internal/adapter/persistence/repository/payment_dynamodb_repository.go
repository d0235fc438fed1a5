package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	Seq             int64  `dynamodbav:"seq"`
	EntityID        string `dynamodbav:"entity_id"`
	EntityType      string `dynamodbav:"entity_type,omitempty"`
	PaymentTypeID   string `dynamodbav:"payment_type_id"`
	PaymentMethodID string `dynamodbav:"payment_method_id"`
	Amount          string `dynamodbav:"amount"`
	Date            string `dynamodbav:"date"`
	Status          string `dynamodbav:"status"`
}

// PaymentDynamoRepository persists the ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the table and orders by seq to honor insertion order.

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p, nextSeq())); err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	items, err := scanAll[paymentItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, func(a, b paymentItem) int { return cmp.Compare(a.Seq, b.Seq) })
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	return out, nil
}

func toPaymentItem(p entities.Payment, seq int64) paymentItem {
	return paymentItem{
		ID:              p.ID,
		Seq:             seq,
		EntityID:        p.EntityID,
		EntityType:      string(p.EntityType),
		PaymentTypeID:   p.PaymentTypeID,
		PaymentMethodID: p.PaymentMethodID,
		Amount:          floatToString(p.Amount),
		Date:            p.Date.Format(time.RFC3339Nano),
		Status:          string(p.Status),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Payment{
		ID:              it.ID,
		EntityID:        it.EntityID,
		EntityType:      entities.EntityKind(it.EntityType),
		PaymentTypeID:   it.PaymentTypeID,
		PaymentMethodID: it.PaymentMethodID,
		Amount:          amount,
		Date:            dt,
		Status:          entities.PaymentStatus(it.Status),
	}
}
