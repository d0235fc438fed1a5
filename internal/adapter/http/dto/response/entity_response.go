package response

import (
	"clinica_finanzas/internal/domain/entities"
	"time"
)

type EntityResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	KindLabel string     `json:"kind_label"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Address   string     `json:"address,omitempty"`
}

func FromEntity(e entities.Entity) EntityResponse {
	res := EntityResponse{
		ID:        e.EntityID(),
		Name:      e.DisplayName(),
		Kind:      string(e.Kind()),
		KindLabel: e.Kind().Label(),
	}
	if p, ok := e.(entities.Patient); ok {
		if !p.BirthDate.IsZero() {
			bd := p.BirthDate
			res.BirthDate = &bd
		}
		res.Gender = p.Gender
		res.Phone = p.Phone
		res.Email = p.Email
		res.Address = p.Address
	}
	return res
}
