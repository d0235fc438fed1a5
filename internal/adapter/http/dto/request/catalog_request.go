package request

import (
	"clinica_finanzas/internal/usecase"
	"strings"
)

type PaymentMethodCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     *bool  `json:"enabled"`
}

func (r PaymentMethodCreateRequest) ToInput() usecase.AddPaymentMethodInput {
	return usecase.AddPaymentMethodInput{Name: r.Name, Description: r.Description, Enabled: r.Enabled}
}

type PaymentMethodEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PaymentTypeCreateRequest carries an optional suggested amount. An empty
// string or null means the type has no default.
type PaymentTypeCreateRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DefaultAmount any    `json:"default_amount"`
}

func (r PaymentTypeCreateRequest) ToInput() (usecase.AddPaymentTypeInput, error) {
	in := usecase.AddPaymentTypeInput{Name: r.Name, Description: r.Description}
	raw := r.DefaultAmount
	if s, ok := raw.(string); ok {
		if strings.TrimSpace(s) == "" {
			return in, nil
		}
		raw = strings.TrimSpace(s)
	}
	if raw == nil {
		return in, nil
	}
	v, err := parseAmount(raw)
	if err != nil {
		return usecase.AddPaymentTypeInput{}, err
	}
	in.DefaultAmount = &v
	return in, nil
}
