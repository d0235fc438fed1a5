package repository

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"
	"slices"
	"sync"
)

// PaymentMethodMemoryRepository keeps methods in load order, new ones appended.
type PaymentMethodMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.PaymentMethod
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodMemoryRepository)(nil)

func NewPaymentMethodMemoryRepository() *PaymentMethodMemoryRepository {
	return &PaymentMethodMemoryRepository{}
}

func (r *PaymentMethodMemoryRepository) Create(_ context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(m.ID) >= 0 {
		return entities.PaymentMethod{}, fmt.Errorf("payment method %s: %w", m.ID, ErrDuplicateID)
	}
	r.items = append(r.items, m)
	return m, nil
}

func (r *PaymentMethodMemoryRepository) GetByID(_ context.Context, id string) (entities.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.find(id); i >= 0 {
		return r.items[i], nil
	}
	return entities.PaymentMethod{}, nil
}

func (r *PaymentMethodMemoryRepository) List(_ context.Context) ([]entities.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *PaymentMethodMemoryRepository) SetEnabled(_ context.Context, id string, enabled bool) (entities.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return entities.PaymentMethod{}, nil
	}
	r.items[i].Enabled = enabled
	return r.items[i], nil
}

func (r *PaymentMethodMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.items = slices.Delete(r.items, i, i+1)
	return true, nil
}

func (r *PaymentMethodMemoryRepository) find(id string) int {
	return slices.IndexFunc(r.items, func(m entities.PaymentMethod) bool { return m.ID == id })
}
