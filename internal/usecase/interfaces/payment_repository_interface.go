package interfaces

import (
	"clinica_finanzas/internal/domain/entities"
	"context"
)

// IPaymentRepository stores the ledger.
//
// Contract shared by every implementation:
//   - List returns payments in insertion order.
//   - Create is atomic: either the payment is appended or nothing changes.
//   - GetByID returns a zero Payment and nil error when the id is unknown.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
}
