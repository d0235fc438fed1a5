package interfaces

import (
	"clinica_finanzas/internal/domain/entities"
	"context"
)

// IInvoiceExporter turns an invoice document into a downloadable file.
//
// The file format is the exporter's concern; callers only rely on the bytes,
// the content type and the extension used for the file name.
type IInvoiceExporter interface {
	ExportInvoice(ctx context.Context, inv entities.Invoice) ([]byte, error)
	ContentType() string
	Extension() string
}

// LedgerSheet is a tabular rendering of a ledger view.
type LedgerSheet struct {
	Title   string
	Headers []string
	Rows    [][]any
	Footer  []any
}

// ILedgerExporter writes a ledger view as a spreadsheet.
type ILedgerExporter interface {
	ExportLedger(ctx context.Context, sheet LedgerSheet) ([]byte, error)
	ContentType() string
	Extension() string
}
