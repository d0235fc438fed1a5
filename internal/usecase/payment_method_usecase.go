package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method id")
)

// AddPaymentMethodInput is the payload for registering a method.
// Enabled defaults to true when nil.
type AddPaymentMethodInput struct {
	Name        string
	Description string
	Enabled     *bool
}

type IPaymentMethodUseCase interface {
	List(ctx context.Context) ([]entities.PaymentMethod, error)
	ListSelectable(ctx context.Context) ([]entities.PaymentMethod, error)
	Get(ctx context.Context, id string) (entities.PaymentMethod, error)
	Add(ctx context.Context, in AddPaymentMethodInput) (entities.PaymentMethod, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (entities.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
}

type PaymentMethodUseCase struct {
	repo     interfaces.IPaymentMethodRepository
	payments interfaces.IPaymentRepository
	lock     *LedgerLock
}

var _ IPaymentMethodUseCase = (*PaymentMethodUseCase)(nil)

func NewPaymentMethodUseCase(repo interfaces.IPaymentMethodRepository, payments interfaces.IPaymentRepository, lock *LedgerLock) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo, payments: payments, lock: lock}
}

func (u *PaymentMethodUseCase) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	return u.repo.List(ctx)
}

// ListSelectable returns the methods offered when registering a new payment.
func (u *PaymentMethodUseCase) ListSelectable(ctx context.Context) ([]entities.PaymentMethod, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PaymentMethod, 0, len(all))
	for _, m := range all {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out, nil
}

func (u *PaymentMethodUseCase) Get(ctx context.Context, id string) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidPaymentMethod
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if m.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return m, nil
}

func (u *PaymentMethodUseCase) Add(ctx context.Context, in AddPaymentMethodInput) (entities.PaymentMethod, error) {
	name, description, err := validateCatalogEntry(in.Name, in.Description)
	if err != nil {
		log.Printf("[payment-method][usecase] add rejected err=%v", err)
		return entities.PaymentMethod{}, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	m := entities.PaymentMethod{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Enabled:     enabled,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[payment-method][usecase] repository create failed id=%s err=%v", m.ID, err)
		return entities.PaymentMethod{}, err
	}
	log.Printf("[payment-method][usecase] added id=%s name=%q enabled=%t", created.ID, created.Name, created.Enabled)
	return created, nil
}

func (u *PaymentMethodUseCase) SetEnabled(ctx context.Context, id string, enabled bool) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidPaymentMethod
	}
	updated, err := u.repo.SetEnabled(ctx, id, enabled)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if updated.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	log.Printf("[payment-method][usecase] set-enabled id=%s enabled=%t", id, enabled)
	return updated, nil
}

// Delete removes a method that no payment references.
func (u *PaymentMethodUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentMethod
	}
	defer u.lock.hold()()
	inUse, err := referencedBy(ctx, u.payments, func(p entities.Payment) bool { return p.PaymentMethodID == id })
	if err != nil {
		return err
	}
	if inUse {
		log.Printf("[payment-method][usecase] delete rejected id=%s reason=in-use", id)
		return fmt.Errorf("%w: payment method %s", ErrReferenceInUse, id)
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentMethodNotFound
	}
	log.Printf("[payment-method][usecase] deleted id=%s", id)
	return nil
}

func referencedBy(ctx context.Context, payments interfaces.IPaymentRepository, match func(entities.Payment) bool) (bool, error) {
	if payments == nil {
		return false, errors.New("payment repository not configured")
	}
	all, err := payments.List(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range all {
		if match(p) {
			return true, nil
		}
	}
	return false, nil
}
