package interfaces

import (
	"clinica_finanzas/internal/domain/entities"
	"context"
)

// IPaymentTypeRepository stores the payment type catalog.

type IPaymentTypeRepository interface {
	Create(ctx context.Context, t entities.PaymentType) (entities.PaymentType, error)
	GetByID(ctx context.Context, id string) (entities.PaymentType, error)
	List(ctx context.Context) ([]entities.PaymentType, error)
	Delete(ctx context.Context, id string) (bool, error)
}
