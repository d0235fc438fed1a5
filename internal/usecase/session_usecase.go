package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"sync"
)

// ISessionUseCase seeds the registry and stores from a snapshot.
//
// Initialize runs once per process. Any later call fails with
// ErrAlreadyInitialized and leaves the current state untouched. Once the
// ledger holds a payment that is not part of the seed, the stores are left
// as they are.
type ISessionUseCase interface {
	Initialize(ctx context.Context, snapshot entities.Snapshot) error
	InitializeFrom(ctx context.Context, loader interfaces.ISnapshotLoader) error
	Initialized() bool
}

type SessionUseCase struct {
	registry *EntityRegistry
	methods  interfaces.IPaymentMethodRepository
	types    interfaces.IPaymentTypeRepository
	payments interfaces.IPaymentRepository

	mu          sync.Mutex
	initialized bool
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	registry *EntityRegistry,
	methods interfaces.IPaymentMethodRepository,
	types interfaces.IPaymentTypeRepository,
	payments interfaces.IPaymentRepository,
) *SessionUseCase {
	return &SessionUseCase{registry: registry, methods: methods, types: types, payments: payments}
}

// InitializeFrom fetches the snapshot and seeds the session with it. The
// loader is not called when the session is already initialized.
func (u *SessionUseCase) InitializeFrom(ctx context.Context, loader interfaces.ISnapshotLoader) error {
	if u.Initialized() {
		log.Printf("[session][usecase] initialize rejected: already initialized")
		return ErrAlreadyInitialized
	}
	snapshot, err := loader.Load(ctx)
	if err != nil {
		log.Printf("[session][usecase] snapshot load failed err=%v", err)
		return fmt.Errorf("load snapshot: %w", err)
	}
	return u.Initialize(ctx, snapshot)
}

func (u *SessionUseCase) Initialize(ctx context.Context, snapshot entities.Snapshot) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.initialized {
		log.Printf("[session][usecase] initialize rejected: already initialized")
		return ErrAlreadyInitialized
	}
	log.Printf("[session][usecase] initialize start patients=%d companies=%d methods=%d types=%d payments=%d",
		len(snapshot.Patients), len(snapshot.Companies), len(snapshot.PaymentMethods), len(snapshot.PaymentTypes), len(snapshot.Payments))

	if err := validateSnapshot(snapshot); err != nil {
		log.Printf("[session][usecase] initialize rejected err=%v", err)
		return err
	}
	if err := u.seed(ctx, snapshot); err != nil {
		return err
	}
	u.registry.Load(snapshot.Patients, snapshot.Companies)

	u.initialized = true
	log.Printf("[session][usecase] initialize success")
	return nil
}

func (u *SessionUseCase) Initialized() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.initialized
}

// seed decides from the ledger alone. A ledger holding only seed payments
// (none, or what an interrupted earlier seed wrote) gets every missing seed
// record; catalogs go first so seeded payments always reference stored
// entries. A ledger with any other payment is live data and is not touched.
func (u *SessionUseCase) seed(ctx context.Context, snapshot entities.Snapshot) error {
	stored, err := u.payments.List(ctx)
	if err != nil {
		return fmt.Errorf("list payment store: %w", err)
	}
	seedIDs := make(map[string]struct{}, len(snapshot.Payments))
	for _, p := range snapshot.Payments {
		seedIDs[p.ID] = struct{}{}
	}
	for _, p := range stored {
		if _, ok := seedIDs[p.ID]; !ok {
			log.Printf("[session][usecase] ledger holds recorded payments count=%d; seed skipped", len(stored))
			return nil
		}
	}

	methods, err := u.methods.List(ctx)
	if err != nil {
		return fmt.Errorf("list payment method store: %w", err)
	}
	if err := seedMissing(ctx, "payment method", snapshot.PaymentMethods, methods,
		func(m entities.PaymentMethod) string { return m.ID }, u.methods.Create); err != nil {
		return err
	}
	types, err := u.types.List(ctx)
	if err != nil {
		return fmt.Errorf("list payment type store: %w", err)
	}
	if err := seedMissing(ctx, "payment type", snapshot.PaymentTypes, types,
		func(t entities.PaymentType) string { return t.ID }, u.types.Create); err != nil {
		return err
	}
	return seedMissing(ctx, "payment", snapshot.Payments, stored,
		func(p entities.Payment) string { return p.ID }, u.payments.Create)
}

// seedMissing creates the seed items whose id is not stored yet.
func seedMissing[T any](
	ctx context.Context,
	label string,
	items []T,
	stored []T,
	id func(T) string,
	create func(context.Context, T) (T, error),
) error {
	have := make(map[string]struct{}, len(stored))
	for _, it := range stored {
		have[id(it)] = struct{}{}
	}
	created := 0
	for _, it := range items {
		if _, ok := have[id(it)]; ok {
			continue
		}
		if _, err := create(ctx, it); err != nil {
			return fmt.Errorf("seed %s %s: %w", label, id(it), err)
		}
		created++
	}
	log.Printf("[session][usecase] seeded %s created=%d kept=%d", label, created, len(items)-created)
	return nil
}

// validateSnapshot rejects seed data that would break ledger invariants, so
// Initialize fails before touching any store.
func validateSnapshot(s entities.Snapshot) error {
	methodIDs := make(map[string]struct{}, len(s.PaymentMethods))
	for _, m := range s.PaymentMethods {
		if m.ID == "" {
			return fmt.Errorf("%w: payment method without id", ErrValidation)
		}
		if _, dup := methodIDs[m.ID]; dup {
			return fmt.Errorf("%w: duplicate payment method id %s", ErrValidation, m.ID)
		}
		methodIDs[m.ID] = struct{}{}
	}
	typeIDs := make(map[string]struct{}, len(s.PaymentTypes))
	for _, t := range s.PaymentTypes {
		if t.ID == "" {
			return fmt.Errorf("%w: payment type without id", ErrValidation)
		}
		if _, dup := typeIDs[t.ID]; dup {
			return fmt.Errorf("%w: duplicate payment type id %s", ErrValidation, t.ID)
		}
		typeIDs[t.ID] = struct{}{}
	}
	paymentIDs := make(map[string]struct{}, len(s.Payments))
	for _, p := range s.Payments {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: payment without id", ErrValidation)
		case !p.Status.Valid():
			return fmt.Errorf("%w: payment %s has unknown status %q", ErrValidation, p.ID, p.Status)
		case p.Amount <= 0:
			return fmt.Errorf("%w: payment %s amount must be greater than zero", ErrValidation, p.ID)
		}
		if _, dup := paymentIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate payment id %s", ErrValidation, p.ID)
		}
		paymentIDs[p.ID] = struct{}{}
		if _, ok := typeIDs[p.PaymentTypeID]; !ok {
			return fmt.Errorf("%w: payment %s references unknown payment type %q", ErrReference, p.ID, p.PaymentTypeID)
		}
		if _, ok := methodIDs[p.PaymentMethodID]; !ok {
			return fmt.Errorf("%w: payment %s references unknown payment method %q", ErrReference, p.ID, p.PaymentMethodID)
		}
	}
	return nil
}
