package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	mock_interfaces "clinica_finanzas/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_Add(t *testing.T) {
	l := newSeededLedger(t)
	uc := l.paymentUseCase()
	ctx := context.Background()

	before, _ := uc.List(ctx)
	p, err := uc.Add(ctx, AddPaymentInput{EntityID: "c-1", PaymentTypeID: "t-2", PaymentMethodID: "m-1", Amount: 950.5, Date: day(20)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _ := uc.List(ctx)

	if len(after) != len(before)+1 {
		t.Fatalf("expected ledger to grow by one, got %d -> %d", len(before), len(after))
	}
	if after[len(after)-1].ID != p.ID {
		t.Fatal("expected new payment appended at the end")
	}
	if p.Status != entities.PaymentStatusCompletado || p.EntityType != entities.EntityKindCompany {
		t.Fatalf("unexpected payment %+v", p)
	}
	seen := map[string]bool{}
	for _, x := range after {
		if seen[x.ID] {
			t.Fatalf("duplicate payment id %s", x.ID)
		}
		seen[x.ID] = true
	}
}

func TestPaymentUseCase_Add_Rejections(t *testing.T) {
	cases := []struct {
		name string
		in   AddPaymentInput
		want error
	}{
		{"zero amount", AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 0}, ErrValidation},
		{"negative amount", AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: -5}, ErrValidation},
		{"nan amount", AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: math.NaN()}, ErrValidation},
		{"blank entity", AddPaymentInput{EntityID: "  ", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 10}, ErrValidation},
		{"unknown type", AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-9", PaymentMethodID: "m-1", Amount: 10}, ErrReference},
		{"missing type", AddPaymentInput{EntityID: "p-1", PaymentMethodID: "m-1", Amount: 10}, ErrReference},
		{"unknown method", AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-9", Amount: 10}, ErrReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newSeededLedger(t)
			uc := l.paymentUseCase()
			before, _ := uc.List(context.Background())

			_, err := uc.Add(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			after, _ := uc.List(context.Background())
			if len(after) != len(before) {
				t.Fatalf("expected ledger unchanged, got %d -> %d", len(before), len(after))
			}
		})
	}
}

func TestPaymentUseCase_Add_Defaults(t *testing.T) {
	l := newSeededLedger(t)
	uc := l.paymentUseCase()
	fixed := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	t.Run("zero date stamped with now", func(t *testing.T) {
		p, err := uc.Add(context.Background(), AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 800})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Date.Equal(fixed) {
			t.Fatalf("expected date %v, got %v", fixed, p.Date)
		}
	})

	t.Run("unresolved entity recorded without type", func(t *testing.T) {
		p, err := uc.Add(context.Background(), AddPaymentInput{EntityID: "walk-in", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 800})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.EntityType != "" {
			t.Fatalf("expected empty entity type, got %q", p.EntityType)
		}
	})

	t.Run("disabled method still accepted", func(t *testing.T) {
		p, err := uc.Add(context.Background(), AddPaymentInput{EntityID: "p-2", PaymentTypeID: "t-1", PaymentMethodID: "m-2", Amount: 800})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaymentMethodID != "m-2" {
			t.Fatalf("expected method m-2, got %s", p.PaymentMethodID)
		}
	})
}

func TestPaymentUseCase_Add_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	types := mock_interfaces.NewMockIPaymentTypeRepository(ctrl)
	methods := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)
	uc := NewPaymentUseCase(repo, types, methods, NewEntityRegistry(), NewLedgerLock())

	types.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.PaymentType{ID: "t-1"}, nil)
	methods.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.PaymentMethod{ID: "m-1"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))

	_, err := uc.Add(context.Background(), AddPaymentInput{EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 10})
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestPaymentUseCase_Get(t *testing.T) {
	uc := newSeededLedger(t).paymentUseCase()

	p, err := uc.Get(context.Background(), "pay-2")
	if err != nil || p.Amount != 1200 {
		t.Fatalf("expected pay-2, got %+v err=%v", p, err)
	}
	if _, err := uc.Get(context.Background(), "pay-99"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}
}

func TestPaymentUseCase_Search(t *testing.T) {
	uc := newSeededLedger(t).paymentUseCase()
	ctx := context.Background()

	lower, err := uc.Search(ctx, "juan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper, _ := uc.Search(ctx, "  JUAN ")
	if len(lower) != 3 || len(upper) != 3 {
		t.Fatalf("expected 3 matches either case, got %d and %d", len(lower), len(upper))
	}
	for i, want := range []string{"pay-1", "pay-2", "pay-3"} {
		if lower[i].ID != want || upper[i].ID != want {
			t.Fatalf("expected ledger order, got %s/%s at %d", lower[i].ID, upper[i].ID, i)
		}
	}

	all, _ := uc.Search(ctx, " ")
	if len(all) != 6 {
		t.Fatalf("expected blank query to return the whole ledger, got %d", len(all))
	}

	unknown, _ := uc.Search(ctx, "unknown")
	if len(unknown) != 1 || unknown[0].ID != "pay-6" {
		t.Fatalf("expected unresolved payer to match its display name, got %+v", unknown)
	}
}

func TestPaymentUseCase_Filter(t *testing.T) {
	uc := newSeededLedger(t).paymentUseCase()

	seq, err := uc.Filter(context.Background(), MatchAll(MatchStatus(entities.PaymentStatusCompletado), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for p := range seq {
		ids = append(ids, p.ID)
		if len(ids) == 2 {
			break
		}
	}
	if len(ids) != 2 || ids[0] != "pay-1" || ids[1] != "pay-2" {
		t.Fatalf("expected early stop after pay-1, pay-2, got %v", ids)
	}

	if MatchAll(nil, nil) != nil {
		t.Fatal("expected nil predicate when nothing to match")
	}
}
