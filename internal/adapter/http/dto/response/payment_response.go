package response

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/domain/money"
	"time"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	EntityID        string    `json:"entity_id"`
	EntityType      string    `json:"entity_type"`
	PaymentTypeID   string    `json:"payment_type_id"`
	PaymentMethodID string    `json:"payment_method_id"`
	Amount          float64   `json:"amount"`
	AmountDisplay   string    `json:"amount_display"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		EntityID:        p.EntityID,
		EntityType:      string(p.EntityType),
		PaymentTypeID:   p.PaymentTypeID,
		PaymentMethodID: p.PaymentMethodID,
		Amount:          p.Amount,
		AmountDisplay:   money.Format(p.Amount),
		Date:            p.Date,
		Status:          string(p.Status),
	}
}
