package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	mock_interfaces "clinica_finanzas/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestPaymentMethodUseCase_Add(t *testing.T) {
	t.Run("short name rejected without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		_, err := uc.Add(context.Background(), AddPaymentMethodInput{Name: "Pa", Description: "Pago con tarjeta"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("short description rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentMethodUseCase(mock_interfaces.NewMockIPaymentMethodRepository(ctrl), nil, NewLedgerLock())

		_, err := uc.Add(context.Background(), AddPaymentMethodInput{Name: "Tarjeta", Description: "  corta   "})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("defaults to enabled and trims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) { return m, nil })

		m, err := uc.Add(context.Background(), AddPaymentMethodInput{Name: "  Tarjeta ", Description: " Pago con tarjeta "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID == "" || m.Name != "Tarjeta" || m.Description != "Pago con tarjeta" || !m.Enabled {
			t.Fatalf("unexpected method %+v", m)
		}
	})

	t.Run("explicitly disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) { return m, nil })

		m, err := uc.Add(context.Background(), AddPaymentMethodInput{Name: "Vales", Description: "Vales de despensa", Enabled: ptr(false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Enabled {
			t.Fatal("expected method to be disabled")
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentMethod{}, errors.New("db"))

		_, err := uc.Add(context.Background(), AddPaymentMethodInput{Name: "Tarjeta", Description: "Pago con tarjeta"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPaymentMethodUseCase_ListSelectable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
	uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

	repo.EXPECT().List(gomock.Any()).Return([]entities.PaymentMethod{
		{ID: "m-1", Name: "Efectivo", Enabled: true},
		{ID: "m-2", Name: "Cheque", Enabled: false},
		{ID: "m-3", Name: "Tarjeta", Enabled: true},
	}, nil)

	got, err := uc.ListSelectable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m-1" || got[1].ID != "m-3" {
		t.Fatalf("expected enabled methods in order, got %+v", got)
	}
}

func TestPaymentMethodUseCase_Get(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewPaymentMethodUseCase(nil, nil, NewLedgerLock())
		if _, err := uc.Get(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		repo.EXPECT().GetByID(gomock.Any(), "m-9").Return(entities.PaymentMethod{}, nil)

		if _, err := uc.Get(context.Background(), "m-9"); !errors.Is(err, ErrPaymentMethodNotFound) {
			t.Fatalf("expected ErrPaymentMethodNotFound, got %v", err)
		}
	})
}

func TestPaymentMethodUseCase_SetEnabled(t *testing.T) {
	t.Run("disable keeps method resolvable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		repo.EXPECT().SetEnabled(gomock.Any(), "m-1", false).Return(entities.PaymentMethod{ID: "m-1", Enabled: false}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.PaymentMethod{ID: "m-1", Enabled: false}, nil)

		m, err := uc.SetEnabled(context.Background(), "m-1", false)
		if err != nil || m.Enabled {
			t.Fatalf("expected disabled method, got %+v err=%v", m, err)
		}
		if _, err := uc.Get(context.Background(), "m-1"); err != nil {
			t.Fatalf("expected disabled method to stay resolvable, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, nil, NewLedgerLock())

		repo.EXPECT().SetEnabled(gomock.Any(), "m-9", true).Return(entities.PaymentMethod{}, nil)

		if _, err := uc.SetEnabled(context.Background(), "m-9", true); !errors.Is(err, ErrPaymentMethodNotFound) {
			t.Fatalf("expected ErrPaymentMethodNotFound, got %v", err)
		}
	})
}

func TestPaymentMethodUseCase_Delete(t *testing.T) {
	t.Run("referenced method is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, payments, NewLedgerLock())

		payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{{ID: "pay-1", PaymentMethodID: "m-1"}}, nil)

		if err := uc.Delete(context.Background(), "m-1"); !errors.Is(err, ErrReferenceInUse) {
			t.Fatalf("expected ErrReferenceInUse, got %v", err)
		}
	})

	t.Run("unreferenced method is deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, payments, NewLedgerLock())

		payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{{ID: "pay-1", PaymentMethodID: "m-1"}}, nil)
		repo.EXPECT().Delete(gomock.Any(), "m-2").Return(true, nil)

		if err := uc.Delete(context.Background(), "m-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentMethodUseCase(repo, payments, NewLedgerLock())

		payments.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "m-9").Return(false, nil)

		if err := uc.Delete(context.Background(), "m-9"); !errors.Is(err, ErrPaymentMethodNotFound) {
			t.Fatalf("expected ErrPaymentMethodNotFound, got %v", err)
		}
	})

	t.Run("payment repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentMethodUseCase(mock_interfaces.NewMockIPaymentMethodRepository(ctrl), nil, NewLedgerLock())

		err := uc.Delete(context.Background(), "m-1")
		if err == nil || err.Error() != "payment repository not configured" {
			t.Fatalf("expected payment repository not configured error, got %v", err)
		}
	})
}
