package entities

import (
	"strings"
	"time"
	"unicode"
)

const (
	InvoiceDateLayout     = "02/01/2006"
	InvoiceFileDateLayout = "2006-01-02"
)

// InvoiceIssuer is the clinic identity printed on every invoice header.
type InvoiceIssuer struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// InvoiceParty is the "Bill To" block.
type InvoiceParty struct {
	EntityID  string     `json:"entity_id"`
	Name      string     `json:"name"`
	Kind      EntityKind `json:"kind"`
	KindLabel string     `json:"kind_label"`
}

type InvoiceLine struct {
	Concept       string  `json:"concept"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
}

// Invoice is derived on demand from a completed payment and never stored.
//
// Two invoices built from the same payment differ only in GeneratedAt.
type Invoice struct {
	Number           string        `json:"number"`
	PaymentID        string        `json:"payment_id"`
	Issuer           InvoiceIssuer `json:"issuer"`
	BillTo           InvoiceParty  `json:"bill_to"`
	IssueDate        time.Time     `json:"issue_date"`
	IssueDateDisplay string        `json:"issue_date_display"`
	Items            []InvoiceLine `json:"items"`
	Total            float64       `json:"total"`
	TotalDisplay     string        `json:"total_display"`
	Currency         string        `json:"currency"`
	Footer           string        `json:"footer"`
	GeneratedAt      time.Time     `json:"generated_at"`
}

// FileName returns factura_{entity name}_{yyyy-MM-dd}.{ext}, with every
// whitespace run in the name replaced by a single underscore.
func (i Invoice) FileName(ext string) string {
	name := strings.Join(strings.FieldsFunc(i.BillTo.Name, unicode.IsSpace), "_")
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	return "factura_" + name + "_" + i.IssueDate.Format(InvoiceFileDateLayout) + "." + ext
}
