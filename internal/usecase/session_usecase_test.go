package usecase

import (
	"clinica_finanzas/internal/adapter/persistence/repository"
	"clinica_finanzas/internal/domain/entities"
	mock_interfaces "clinica_finanzas/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestSessionUseCase_Initialize(t *testing.T) {
	registry := NewEntityRegistry()
	methods := repository.NewPaymentMethodMemoryRepository()
	types := repository.NewPaymentTypeMemoryRepository()
	payments := repository.NewPaymentMemoryRepository()
	uc := NewSessionUseCase(registry, methods, types, payments)
	ctx := context.Background()

	if uc.Initialized() {
		t.Fatal("expected fresh session")
	}
	if err := uc.Initialize(ctx, testSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.Initialized() {
		t.Fatal("expected session to be initialized")
	}

	gotPayments, _ := payments.List(ctx)
	gotMethods, _ := methods.List(ctx)
	gotTypes, _ := types.List(ctx)
	if len(gotPayments) != 6 || len(gotMethods) != 2 || len(gotTypes) != 2 || registry.Len() != 3 {
		t.Fatalf("unexpected seeded sizes payments=%d methods=%d types=%d entities=%d",
			len(gotPayments), len(gotMethods), len(gotTypes), registry.Len())
	}

	again := testSnapshot()
	again.Patients = nil
	if err := uc.Initialize(ctx, again); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	if registry.Len() != 3 {
		t.Fatal("expected registry untouched by the rejected initialize")
	}
	gotPayments, _ = payments.List(ctx)
	if len(gotPayments) != 6 {
		t.Fatalf("expected ledger untouched, got %d payments", len(gotPayments))
	}
}

func TestSessionUseCase_Initialize_InvalidSnapshot(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.Snapshot)
		want   error
	}{
		{"unknown type", func(s *entities.Snapshot) { s.Payments[0].PaymentTypeID = "t-9" }, ErrReference},
		{"unknown method", func(s *entities.Snapshot) { s.Payments[0].PaymentMethodID = "m-9" }, ErrReference},
		{"non-positive amount", func(s *entities.Snapshot) { s.Payments[1].Amount = 0 }, ErrValidation},
		{"unknown status", func(s *entities.Snapshot) { s.Payments[1].Status = "Reembolsado" }, ErrValidation},
		{"duplicate payment id", func(s *entities.Snapshot) { s.Payments[1].ID = "pay-1" }, ErrValidation},
		{"duplicate method id", func(s *entities.Snapshot) { s.PaymentMethods[1].ID = "m-1" }, ErrValidation},
		{"type without id", func(s *entities.Snapshot) { s.PaymentTypes[0].ID = "" }, ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry := NewEntityRegistry()
			methods := repository.NewPaymentMethodMemoryRepository()
			types := repository.NewPaymentTypeMemoryRepository()
			payments := repository.NewPaymentMemoryRepository()
			uc := NewSessionUseCase(registry, methods, types, payments)

			snap := testSnapshot()
			tc.mutate(&snap)
			if err := uc.Initialize(context.Background(), snap); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if uc.Initialized() {
				t.Fatal("expected session to stay uninitialized")
			}
			gotMethods, _ := methods.List(context.Background())
			if len(gotMethods) != 0 || registry.Len() != 0 {
				t.Fatal("expected nothing seeded")
			}
		})
	}
}

func TestSessionUseCase_Initialize_SkipsLiveLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	methods := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
	types := mock_interfaces.NewMockIPaymentTypeRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	registry := NewEntityRegistry()
	uc := NewSessionUseCase(registry, methods, types, payments)

	payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{{ID: "pay-1"}, {ID: "recorded-later"}}, nil)

	if err := uc.Initialize(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.Initialized() || registry.Len() != 3 {
		t.Fatal("expected registry loaded even when stores are kept")
	}
}

func TestSessionUseCase_Initialize_CompletesInterruptedSeed(t *testing.T) {
	ctx := context.Background()
	snap := testSnapshot()
	methods := repository.NewPaymentMethodMemoryRepository()
	types := repository.NewPaymentTypeMemoryRepository()
	payments := repository.NewPaymentMemoryRepository()
	// an earlier run stopped after the first method, the first type and two payments
	if _, err := methods.Create(ctx, snap.PaymentMethods[0]); err != nil {
		t.Fatal(err)
	}
	if _, err := types.Create(ctx, snap.PaymentTypes[0]); err != nil {
		t.Fatal(err)
	}
	for _, p := range snap.Payments[:2] {
		if _, err := payments.Create(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	uc := NewSessionUseCase(NewEntityRegistry(), methods, types, payments)
	if err := uc.Initialize(ctx, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotPayments, _ := payments.List(ctx)
	gotMethods, _ := methods.List(ctx)
	gotTypes, _ := types.List(ctx)
	if len(gotPayments) != 6 || len(gotMethods) != 2 || len(gotTypes) != 2 {
		t.Fatalf("expected a complete seed, got payments=%d methods=%d types=%d", len(gotPayments), len(gotMethods), len(gotTypes))
	}
	for _, p := range gotPayments {
		if pm, _ := methods.GetByID(ctx, p.PaymentMethodID); pm.ID == "" {
			t.Fatalf("payment %s references missing method %s", p.ID, p.PaymentMethodID)
		}
		if pt, _ := types.GetByID(ctx, p.PaymentTypeID); pt.ID == "" {
			t.Fatalf("payment %s references missing type %s", p.ID, p.PaymentTypeID)
		}
	}
}

func TestSessionUseCase_Initialize_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewSessionUseCase(NewEntityRegistry(), nil, nil, payments)

	payments.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

	if err := uc.Initialize(context.Background(), testSnapshot()); err == nil {
		t.Fatal("expected store error")
	}
	if uc.Initialized() {
		t.Fatal("expected session to stay uninitialized")
	}
}

func TestSessionUseCase_InitializeFrom(t *testing.T) {
	t.Run("loads and seeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		loader := mock_interfaces.NewMockISnapshotLoader(ctrl)
		payments := repository.NewPaymentMemoryRepository()
		uc := NewSessionUseCase(NewEntityRegistry(), repository.NewPaymentMethodMemoryRepository(), repository.NewPaymentTypeMemoryRepository(), payments)

		loader.EXPECT().Load(gomock.Any()).Return(testSnapshot(), nil)

		if err := uc.InitializeFrom(context.Background(), loader); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := payments.List(context.Background()); len(got) != 6 {
			t.Fatalf("expected 6 seeded payments, got %d", len(got))
		}

		if err := uc.InitializeFrom(context.Background(), loader); !errors.Is(err, ErrAlreadyInitialized) {
			t.Fatalf("expected ErrAlreadyInitialized without reloading, got %v", err)
		}
	})

	t.Run("loader failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		loader := mock_interfaces.NewMockISnapshotLoader(ctrl)
		uc := NewSessionUseCase(NewEntityRegistry(), nil, nil, nil)

		loader.EXPECT().Load(gomock.Any()).Return(entities.Snapshot{}, context.DeadlineExceeded)

		if err := uc.InitializeFrom(context.Background(), loader); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected wrapped loader error, got %v", err)
		}
		if uc.Initialized() {
			t.Fatal("expected session to stay uninitialized")
		}
	})
}
