package repository

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"
	"slices"
	"sync"
)

// PaymentMemoryRepository keeps the ledger in process memory.
//
// The mutex makes "check id + append" a single step, so concurrent requests
// can neither duplicate an id nor observe a half-written ledger.

type PaymentMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Payment
	index map[string]int
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{index: map[string]int{}}
}

func (r *PaymentMemoryRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[p.ID]; ok {
		return entities.Payment{}, fmt.Errorf("payment %s: %w", p.ID, ErrDuplicateID)
	}
	r.index[p.ID] = len(r.items)
	r.items = append(r.items, p)
	return p, nil
}

func (r *PaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.index[id]; ok {
		return r.items[i], nil
	}
	return entities.Payment{}, nil
}

func (r *PaymentMemoryRepository) List(_ context.Context) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}
