package repository

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"
	"slices"
	"sync"
)

type PaymentTypeMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.PaymentType
}

var _ interfaces.IPaymentTypeRepository = (*PaymentTypeMemoryRepository)(nil)

func NewPaymentTypeMemoryRepository() *PaymentTypeMemoryRepository {
	return &PaymentTypeMemoryRepository{}
}

func (r *PaymentTypeMemoryRepository) Create(_ context.Context, t entities.PaymentType) (entities.PaymentType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(t.ID) >= 0 {
		return entities.PaymentType{}, fmt.Errorf("payment type %s: %w", t.ID, ErrDuplicateID)
	}
	t.DefaultAmount = copyAmount(t.DefaultAmount)
	r.items = append(r.items, t)
	return t, nil
}

func (r *PaymentTypeMemoryRepository) GetByID(_ context.Context, id string) (entities.PaymentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.find(id); i >= 0 {
		t := r.items[i]
		t.DefaultAmount = copyAmount(t.DefaultAmount)
		return t, nil
	}
	return entities.PaymentType{}, nil
}

func (r *PaymentTypeMemoryRepository) List(_ context.Context) ([]entities.PaymentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.items)
	for i := range out {
		out[i].DefaultAmount = copyAmount(out[i].DefaultAmount)
	}
	return out, nil
}

func (r *PaymentTypeMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.items = slices.Delete(r.items, i, i+1)
	return true, nil
}

func (r *PaymentTypeMemoryRepository) find(id string) int {
	return slices.IndexFunc(r.items, func(t entities.PaymentType) bool { return t.ID == id })
}

// copyAmount keeps callers from mutating stored default amounts through the pointer.
func copyAmount(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
