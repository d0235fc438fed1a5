package request

import (
	"clinica_finanzas/internal/usecase"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// dateLayouts are the accepted forms of PaymentCreateRequest.Date.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// PaymentCreateRequest is the payload of the "registrar pago" form.
//
// Amount accepts a JSON number or a numeric string, as browsers send form
// values as text. Date is optional; it defaults to the current time.
type PaymentCreateRequest struct {
	EntityID        string `json:"entity_id"`
	PaymentTypeID   string `json:"payment_type_id"`
	PaymentMethodID string `json:"payment_method_id"`
	Amount          any    `json:"amount"`
	Date            string `json:"date"`
}

func (r PaymentCreateRequest) ResolveAmount() (float64, error) {
	return parseAmount(r.Amount)
}

// parseAmount accepts a JSON number or a numeric string. Booleans, objects
// and arrays are rejected even where cast could coerce them.
func parseAmount(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64, json.Number:
	case string:
		raw = strings.TrimSpace(v)
	default:
		return 0, ErrInvalidAmount
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

func (r PaymentCreateRequest) ResolveDate() (time.Time, error) {
	raw := strings.TrimSpace(r.Date)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ToInput converts the payload. Missing fields and range checks are left to
// the use case so every rule is reported with the same error code.
func (r PaymentCreateRequest) ToInput() (usecase.AddPaymentInput, error) {
	amount, err := r.ResolveAmount()
	if err != nil {
		return usecase.AddPaymentInput{}, err
	}
	date, err := r.ResolveDate()
	if err != nil {
		return usecase.AddPaymentInput{}, err
	}
	return usecase.AddPaymentInput{
		EntityID:        r.EntityID,
		PaymentTypeID:   r.PaymentTypeID,
		PaymentMethodID: r.PaymentMethodID,
		Amount:          amount,
		Date:            date,
	}, nil
}
