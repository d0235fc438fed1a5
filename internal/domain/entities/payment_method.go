package entities

// PaymentMethod is how a payment was collected (cash, card, transfer...).
//
// Disabled methods are hidden from the selection list for new payments but
// remain valid references for payments already recorded with them.
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}
