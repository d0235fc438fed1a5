package usecase

import (
	"clinica_finanzas/internal/adapter/persistence/repository"
	"clinica_finanzas/internal/domain/entities"
	"context"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func day(d int) time.Time {
	return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)
}

// testSnapshot has Juan Pérez with three completed payments (800, 1200, 500),
// a pending payment, a company payment and a completed payment whose payer
// is not in the registry.
func testSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Patients: []entities.Patient{
			{ID: "p-1", Name: "Juan Pérez"},
			{ID: "p-2", Name: "María López"},
		},
		Companies: []entities.Company{
			{ID: "c-1", Name: "Acme Seguros"},
		},
		PaymentMethods: []entities.PaymentMethod{
			{ID: "m-1", Name: "Efectivo", Description: "Pago en efectivo", Enabled: true},
			{ID: "m-2", Name: "Cheque", Description: "Cheque nominativo", Enabled: false},
		},
		PaymentTypes: []entities.PaymentType{
			{ID: "t-1", Name: "Consulta", Description: "Consulta general", DefaultAmount: ptr(800.0)},
			{ID: "t-2", Name: "Laboratorio", Description: "Estudios de laboratorio"},
		},
		Payments: []entities.Payment{
			{ID: "pay-1", EntityID: "p-1", EntityType: entities.EntityKindPatient, PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 800, Date: day(1), Status: entities.PaymentStatusCompletado},
			{ID: "pay-2", EntityID: "p-1", EntityType: entities.EntityKindPatient, PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 1200, Date: day(8), Status: entities.PaymentStatusCompletado},
			{ID: "pay-3", EntityID: "p-1", EntityType: entities.EntityKindPatient, PaymentTypeID: "t-2", PaymentMethodID: "m-2", Amount: 500, Date: day(15), Status: entities.PaymentStatusCompletado},
			{ID: "pay-4", EntityID: "p-2", EntityType: entities.EntityKindPatient, PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 300, Date: day(10), Status: entities.PaymentStatusPendiente},
			{ID: "pay-5", EntityID: "c-1", EntityType: entities.EntityKindCompany, PaymentTypeID: "t-2", PaymentMethodID: "m-1", Amount: 5000, Date: day(5), Status: entities.PaymentStatusCompletado},
			{ID: "pay-6", EntityID: "ghost", EntityType: entities.EntityKindPatient, PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 100, Date: day(2), Status: entities.PaymentStatusCompletado},
		},
	}
}

type seededLedger struct {
	registry *EntityRegistry
	payments *repository.PaymentMemoryRepository
	types    *repository.PaymentTypeMemoryRepository
	methods  *repository.PaymentMethodMemoryRepository
}

func newSeededLedger(t *testing.T) seededLedger {
	t.Helper()
	l := seededLedger{
		registry: NewEntityRegistry(),
		payments: repository.NewPaymentMemoryRepository(),
		types:    repository.NewPaymentTypeMemoryRepository(),
		methods:  repository.NewPaymentMethodMemoryRepository(),
	}
	session := NewSessionUseCase(l.registry, l.methods, l.types, l.payments)
	if err := session.Initialize(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return l
}

func (l seededLedger) paymentUseCase() *PaymentUseCase {
	return NewPaymentUseCase(l.payments, l.types, l.methods, l.registry, NewLedgerLock())
}
