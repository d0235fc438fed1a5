package response

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/domain/money"
)

type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

func FromPaymentMethod(m entities.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{ID: m.ID, Name: m.Name, Description: m.Description, Enabled: m.Enabled}
}

func FromPaymentMethods(ms []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPaymentMethod(m))
	}
	return out
}

// PaymentTypeResponse omits the default amount fields when none is set.
type PaymentTypeResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	DefaultAmount        *float64 `json:"default_amount,omitempty"`
	DefaultAmountDisplay string   `json:"default_amount_display,omitempty"`
}

func FromPaymentType(t entities.PaymentType) PaymentTypeResponse {
	res := PaymentTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description}
	if t.HasDefaultAmount() {
		v := *t.DefaultAmount
		res.DefaultAmount = &v
		res.DefaultAmountDisplay = money.Format(v)
	}
	return res
}

func FromPaymentTypes(ts []entities.PaymentType) []PaymentTypeResponse {
	out := make([]PaymentTypeResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromPaymentType(t))
	}
	return out
}
