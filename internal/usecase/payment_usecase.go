package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidPaymentID = errors.New("invalid payment id")
)

// AddPaymentInput is what the user submits when registering a payment.
// A zero Date is stamped with the current time.
type AddPaymentInput struct {
	EntityID        string
	PaymentTypeID   string
	PaymentMethodID string
	Amount          float64
	Date            time.Time
}

// IPaymentUseCase is the payment ledger.
//
// Ordering contract: List, Filter and Search yield payments in insertion
// order. Views that want "most recent first" sort explicitly.

type IPaymentUseCase interface {
	List(ctx context.Context) ([]entities.Payment, error)
	Get(ctx context.Context, id string) (entities.Payment, error)
	Add(ctx context.Context, in AddPaymentInput) (entities.Payment, error)
	Filter(ctx context.Context, match func(entities.Payment) bool) (iter.Seq[entities.Payment], error)
	Search(ctx context.Context, query string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	typeRepo   interfaces.IPaymentTypeRepository
	methodRepo interfaces.IPaymentMethodRepository
	registry   IEntityRegistry
	lock       *LedgerLock
	now        func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	typeRepo interfaces.IPaymentTypeRepository,
	methodRepo interfaces.IPaymentMethodRepository,
	registry IEntityRegistry,
	lock *LedgerLock,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:       repo,
		typeRepo:   typeRepo,
		methodRepo: methodRepo,
		registry:   registry,
		lock:       lock,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	return u.repo.List(ctx)
}

func (u *PaymentUseCase) Get(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) Add(ctx context.Context, in AddPaymentInput) (entities.Payment, error) {
	entityID := strings.TrimSpace(in.EntityID)
	typeID := strings.TrimSpace(in.PaymentTypeID)
	methodID := strings.TrimSpace(in.PaymentMethodID)
	log.Printf("[payment][usecase] add start entity_id=%q type_id=%q method_id=%q amount=%.2f", entityID, typeID, methodID, in.Amount)

	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		log.Printf("[payment][usecase] add rejected amount=%v", in.Amount)
		return entities.Payment{}, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if entityID == "" {
		log.Printf("[payment][usecase] add rejected entity_id empty")
		return entities.Payment{}, fmt.Errorf("%w: entity_id is required", ErrValidation)
	}

	defer u.lock.hold()()
	pt, err := u.lookupType(ctx, typeID)
	if err != nil {
		return entities.Payment{}, err
	}
	pm, err := u.lookupMethod(ctx, methodID)
	if err != nil {
		return entities.Payment{}, err
	}

	var kind entities.EntityKind
	if e, ok := u.registry.Resolve(entityID); ok {
		kind = e.Kind()
	} else {
		log.Printf("[payment][usecase] entity not resolved entity_id=%s; recording without entity_type", entityID)
	}

	date := in.Date
	if date.IsZero() {
		date = u.now()
	}

	p := entities.Payment{
		ID:              uuid.NewString(),
		EntityID:        entityID,
		EntityType:      kind,
		PaymentTypeID:   pt.ID,
		PaymentMethodID: pm.ID,
		Amount:          in.Amount,
		Date:            date,
		Status:          entities.PaymentStatusCompletado,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] add success payment_id=%s entity_type=%s status=%s", created.ID, created.EntityType, created.Status)
	return created, nil
}

func (u *PaymentUseCase) lookupType(ctx context.Context, id string) (entities.PaymentType, error) {
	var pt entities.PaymentType
	if id != "" {
		var err error
		if pt, err = u.typeRepo.GetByID(ctx, id); err != nil {
			return entities.PaymentType{}, err
		}
	}
	if pt.ID == "" {
		log.Printf("[payment][usecase] add rejected unknown payment_type_id=%q", id)
		return entities.PaymentType{}, fmt.Errorf("%w: payment type %q not found", ErrReference, id)
	}
	return pt, nil
}

func (u *PaymentUseCase) lookupMethod(ctx context.Context, id string) (entities.PaymentMethod, error) {
	var pm entities.PaymentMethod
	if id != "" {
		var err error
		if pm, err = u.methodRepo.GetByID(ctx, id); err != nil {
			return entities.PaymentMethod{}, err
		}
	}
	if pm.ID == "" {
		log.Printf("[payment][usecase] add rejected unknown payment_method_id=%q", id)
		return entities.PaymentMethod{}, fmt.Errorf("%w: payment method %q not found", ErrReference, id)
	}
	return pm, nil
}

// Filter scans the ledger snapshot taken at call time, yielding lazily.
func (u *PaymentUseCase) Filter(ctx context.Context, match func(entities.Payment) bool) (iter.Seq[entities.Payment], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return func(yield func(entities.Payment) bool) {
		for _, p := range all {
			if match != nil && !match(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}, nil
}

// Search matches query case-insensitively against the entity display name.
// A blank query returns the whole ledger.
func (u *PaymentUseCase) Search(ctx context.Context, query string) ([]entities.Payment, error) {
	seq, err := u.Filter(ctx, MatchEntityName(u.registry, query))
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// MatchEntityName builds the search predicate shared by the ledger and its views.
func MatchEntityName(registry IEntityRegistry, query string) func(entities.Payment) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(p entities.Payment) bool {
		return strings.Contains(strings.ToLower(registry.DisplayName(p.EntityID)), q)
	}
}

// MatchStatus keeps payments in the given status.
func MatchStatus(status entities.PaymentStatus) func(entities.Payment) bool {
	return func(p entities.Payment) bool { return p.Status == status }
}

// MatchAll combines predicates; nil predicates are skipped.
func MatchAll(preds ...func(entities.Payment) bool) func(entities.Payment) bool {
	active := slices.DeleteFunc(slices.Clone(preds), func(f func(entities.Payment) bool) bool { return f == nil })
	if len(active) == 0 {
		return nil
	}
	return func(p entities.Payment) bool {
		for _, f := range active {
			if !f(p) {
				return false
			}
		}
		return true
	}
}
