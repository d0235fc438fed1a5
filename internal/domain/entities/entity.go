package entities

import "time"

// EntityKind tags the party behind a payment.
type EntityKind string

const (
	EntityKindPatient EntityKind = "patient"
	EntityKindCompany EntityKind = "company"
)

// UnknownEntityName is shown wherever an entity id does not resolve.
const UnknownEntityName = "Unknown"

// Label returns the printable kind label used on tables and invoices.
func (k EntityKind) Label() string {
	switch k {
	case EntityKindPatient:
		return "Paciente"
	case EntityKindCompany:
		return "Empresa"
	default:
		return ""
	}
}

func (k EntityKind) Valid() bool {
	return k == EntityKindPatient || k == EntityKindCompany
}

// Entity is the payer on a payment: either a Patient or a Company.
//
// The interface is sealed; only the two types in this package implement it,
// so a type switch over Entity is exhaustive.
type Entity interface {
	EntityID() string
	DisplayName() string
	Kind() EntityKind
	isEntity()
}

// Patient is owned by the patient records collaborator; finance only reads it.

type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date,omitzero"`
	Gender    string    `json:"gender,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
}

func (p Patient) EntityID() string    { return p.ID }
func (p Patient) DisplayName() string { return p.Name }
func (p Patient) Kind() EntityKind    { return EntityKindPatient }
func (Patient) isEntity()             {}

// Company is a flat name registry entry.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c Company) EntityID() string    { return c.ID }
func (c Company) DisplayName() string { return c.Name }
func (c Company) Kind() EntityKind    { return EntityKindCompany }
func (Company) isEntity()             {}
