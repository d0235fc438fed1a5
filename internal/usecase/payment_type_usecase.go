package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrPaymentTypeNotFound = errors.New("payment type not found")
	ErrInvalidPaymentType  = errors.New("invalid payment type id")
)

type AddPaymentTypeInput struct {
	Name          string
	Description   string
	DefaultAmount *float64
}

// IPaymentTypeUseCase manages the payment type catalog.
//
// Get is the first half of the default-amount flow: callers read
// DefaultAmount from the returned type and apply it themselves.

type IPaymentTypeUseCase interface {
	List(ctx context.Context) ([]entities.PaymentType, error)
	Get(ctx context.Context, id string) (entities.PaymentType, error)
	Add(ctx context.Context, in AddPaymentTypeInput) (entities.PaymentType, error)
	Delete(ctx context.Context, id string) error
}

type PaymentTypeUseCase struct {
	repo     interfaces.IPaymentTypeRepository
	payments interfaces.IPaymentRepository
	lock     *LedgerLock
}

var _ IPaymentTypeUseCase = (*PaymentTypeUseCase)(nil)

func NewPaymentTypeUseCase(repo interfaces.IPaymentTypeRepository, payments interfaces.IPaymentRepository, lock *LedgerLock) *PaymentTypeUseCase {
	return &PaymentTypeUseCase{repo: repo, payments: payments, lock: lock}
}

func (u *PaymentTypeUseCase) List(ctx context.Context) ([]entities.PaymentType, error) {
	return u.repo.List(ctx)
}

func (u *PaymentTypeUseCase) Get(ctx context.Context, id string) (entities.PaymentType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentType{}, ErrInvalidPaymentType
	}
	pt, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentType{}, err
	}
	if pt.ID == "" {
		return entities.PaymentType{}, ErrPaymentTypeNotFound
	}
	return pt, nil
}

func (u *PaymentTypeUseCase) Add(ctx context.Context, in AddPaymentTypeInput) (entities.PaymentType, error) {
	name, description, err := validateCatalogEntry(in.Name, in.Description)
	if err != nil {
		log.Printf("[payment-type][usecase] add rejected err=%v", err)
		return entities.PaymentType{}, err
	}

	var defaultAmount *float64
	if in.DefaultAmount != nil {
		v := *in.DefaultAmount
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			log.Printf("[payment-type][usecase] add rejected default_amount=%v", v)
			return entities.PaymentType{}, fmt.Errorf("%w: default amount must be a non-negative number", ErrValidation)
		}
		defaultAmount = &v
	}

	pt := entities.PaymentType{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		DefaultAmount: defaultAmount,
	}
	created, err := u.repo.Create(ctx, pt)
	if err != nil {
		log.Printf("[payment-type][usecase] repository create failed id=%s err=%v", pt.ID, err)
		return entities.PaymentType{}, err
	}
	log.Printf("[payment-type][usecase] added id=%s name=%q has_default=%t", created.ID, created.Name, created.HasDefaultAmount())
	return created, nil
}

func (u *PaymentTypeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentType
	}
	defer u.lock.hold()()
	inUse, err := referencedBy(ctx, u.payments, func(p entities.Payment) bool { return p.PaymentTypeID == id })
	if err != nil {
		return err
	}
	if inUse {
		log.Printf("[payment-type][usecase] delete rejected id=%s reason=in-use", id)
		return fmt.Errorf("%w: payment type %s", ErrReferenceInUse, id)
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentTypeNotFound
	}
	log.Printf("[payment-type][usecase] deleted id=%s", id)
	return nil
}
