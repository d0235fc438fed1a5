package response

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase"
	"time"
)

type LedgerRowResponse struct {
	PaymentID        string    `json:"payment_id"`
	EntityID         string    `json:"entity_id"`
	EntityName       string    `json:"entity_name"`
	EntityKind       string    `json:"entity_kind"`
	PaymentType      string    `json:"payment_type"`
	PaymentMethod    string    `json:"payment_method"`
	Amount           float64   `json:"amount"`
	AmountDisplay    string    `json:"amount_display"`
	Date             time.Time `json:"date"`
	DateDisplay      string    `json:"date_display"`
	Status           string    `json:"status"`
	StatusBadge      string    `json:"status_badge"`
	InvoiceAvailable bool      `json:"invoice_available"`
}

type LedgerViewResponse struct {
	Search       string              `json:"search,omitempty"`
	Status       string              `json:"status,omitempty"`
	Recent       bool                `json:"recent"`
	Count        int                 `json:"count"`
	Total        float64             `json:"total"`
	TotalDisplay string              `json:"total_display"`
	Rows         []LedgerRowResponse `json:"rows"`
}

func FromLedgerView(v usecase.LedgerView) LedgerViewResponse {
	res := LedgerViewResponse{
		Search:       v.Query.Search,
		Status:       string(v.Query.Status),
		Recent:       v.Query.Recent,
		Count:        v.Count,
		Total:        v.Total,
		TotalDisplay: v.TotalDisplay,
		Rows:         make([]LedgerRowResponse, 0, len(v.Rows)),
	}
	for _, r := range v.Rows {
		res.Rows = append(res.Rows, LedgerRowResponse{
			PaymentID:        r.PaymentID,
			EntityID:         r.EntityID,
			EntityName:       r.EntityName,
			EntityKind:       r.EntityKindLabel,
			PaymentType:      r.PaymentTypeName,
			PaymentMethod:    r.PaymentMethodName,
			Amount:           r.Amount,
			AmountDisplay:    r.AmountDisplay,
			Date:             r.Date,
			DateDisplay:      r.DateDisplay,
			Status:           string(r.Status),
			StatusBadge:      r.StatusBadge,
			InvoiceAvailable: r.Status == entities.PaymentStatusCompletado,
		})
	}
	return res
}
