package documents

import (
	"bytes"
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfContentType = "application/pdf"
	pdfExtension   = "pdf"
	pdfMargin      = 20.0
	pdfLineHeight  = 6.0
)

// PDFInvoiceExporter prints invoices as single page A4 PDFs.
type PDFInvoiceExporter struct{}

var _ interfaces.IInvoiceExporter = (*PDFInvoiceExporter)(nil)

func NewPDFInvoiceExporter() *PDFInvoiceExporter {
	return &PDFInvoiceExporter{}
}

func (e *PDFInvoiceExporter) ContentType() string { return pdfContentType }
func (e *PDFInvoiceExporter) Extension() string   { return pdfExtension }

func (e *PDFInvoiceExporter) ExportInvoice(ctx context.Context, inv entities.Invoice) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(inv.Items) == 0 {
		return nil, fmt.Errorf("invoice %s has no items", inv.Number)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetTitle("Factura "+inv.Number, true)
	pdf.SetAuthor(inv.Issuer.Name, true)
	pdf.SetCreationDate(inv.GeneratedAt)
	pdf.SetModificationDate(inv.GeneratedAt)
	// core fonts are cp1252; accented names would print as mojibake otherwise
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	width, _ := pdf.GetPageSize()
	content := width - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(content/2, 10, tr(inv.Issuer.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(content/2, 10, "FACTURA", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{inv.Issuer.TaxID, inv.Issuer.Address, inv.Issuer.Phone, inv.Issuer.Email} {
		if line == "" {
			continue
		}
		pdf.CellFormat(content, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(content, pdfLineHeight, tr("Folio: "+inv.Number), "", 1, "R", false, 0, "")
	pdf.CellFormat(content, pdfLineHeight, tr("Fecha de emisión: "+inv.IssueDateDisplay), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(content, pdfLineHeight, "Facturar a", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(content, pdfLineHeight, tr(inv.BillTo.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(content, pdfLineHeight, tr(inv.BillTo.KindLabel+" · "+inv.BillTo.EntityID), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	conceptWidth := content * 0.7
	amountWidth := content - conceptWidth

	pdf.SetFillColor(235, 235, 235)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(conceptWidth, 8, "Concepto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, "Importe", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(conceptWidth, 8, tr(item.Concept), "1", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, 8, item.AmountDisplay, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(conceptWidth, 9, "Total ("+inv.Currency+")", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amountWidth, 9, inv.TotalDisplay, "1", 1, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(content, 4, tr(inv.Footer), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
