package entities

import "time"

// PaymentStatus represents the outcome of a recorded payment.
//
// New payments are always recorded as completed; pending and failed only
// arrive through seed data.

type PaymentStatus string

const (
	PaymentStatusCompletado PaymentStatus = "Completado"
	PaymentStatusPendiente  PaymentStatus = "Pendiente"
	PaymentStatusFallido    PaymentStatus = "Fallido"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusCompletado, PaymentStatusPendiente, PaymentStatusFallido:
		return true
	}
	return false
}

// Badge returns the visual variant used to render the status.
func (s PaymentStatus) Badge() string {
	switch s {
	case PaymentStatusCompletado:
		return "success"
	case PaymentStatusPendiente:
		return "warning"
	case PaymentStatusFallido:
		return "destructive"
	default:
		return "secondary"
	}
}

// Payment is one ledger record.
//
// EntityType is resolved when the payment is added; it stays empty when the
// entity id did not match any patient or company at that time.
type Payment struct {
	ID              string        `json:"id"`
	EntityID        string        `json:"entity_id"`
	EntityType      EntityKind    `json:"entity_type,omitempty"`
	PaymentTypeID   string        `json:"payment_type_id"`
	PaymentMethodID string        `json:"payment_method_id"`
	Amount          float64       `json:"amount"`
	Date            time.Time     `json:"date"`
	Status          PaymentStatus `json:"status"`
}

func (p Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompletado
}
