package entities

// PaymentType is the concept being charged (consultation, lab work...).
//
// DefaultAmount only suggests a value for new payments of this type; callers
// read it and decide whether to apply it.
type PaymentType struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	DefaultAmount *float64 `json:"default_amount,omitempty"`
}

// HasDefaultAmount reports whether a suggested amount is configured.
func (t PaymentType) HasDefaultAmount() bool {
	return t.DefaultAmount != nil
}
