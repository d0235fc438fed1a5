package entities

// Snapshot is the seed data delivered once at startup.
type Snapshot struct {
	Patients       []Patient       `json:"patients"`
	Companies      []Company       `json:"companies"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	PaymentTypes   []PaymentType   `json:"payment_types"`
	Payments       []Payment       `json:"payments"`
}
