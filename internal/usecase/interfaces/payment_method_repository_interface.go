package interfaces

import (
	"clinica_finanzas/internal/domain/entities"
	"context"
)

// IPaymentMethodRepository stores the payment method catalog.
//
// Lookups and updates on unknown ids return a zero value and nil error.
type IPaymentMethodRepository interface {
	Create(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
	List(ctx context.Context) ([]entities.PaymentMethod, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (entities.PaymentMethod, error)
	Delete(ctx context.Context, id string) (bool, error)
}
