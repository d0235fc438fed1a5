package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/domain/money"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

const invoiceFooter = "Gracias por su preferencia. Este documento es un comprobante de pago y no sustituye a un CFDI."

// InvoiceFile is a rendered invoice ready to download.
type InvoiceFile struct {
	FileName    string
	ContentType string
	Data        []byte
	Invoice     entities.Invoice
}

// IInvoiceUseCase renders invoices for completed payments.
//
// Unlike the ledger views, invoices never fall back to placeholders: if the
// payer or the concept cannot be resolved the render is aborted.
type IInvoiceUseCase interface {
	Preview(ctx context.Context, paymentID string) (entities.Invoice, error)
	Render(ctx context.Context, paymentID string) (InvoiceFile, error)
}

type InvoiceUseCase struct {
	payments interfaces.IPaymentRepository
	types    interfaces.IPaymentTypeRepository
	registry IEntityRegistry
	exporter interfaces.IInvoiceExporter
	issuer   entities.InvoiceIssuer
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	payments interfaces.IPaymentRepository,
	types interfaces.IPaymentTypeRepository,
	registry IEntityRegistry,
	exporter interfaces.IInvoiceExporter,
	issuer entities.InvoiceIssuer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		payments: payments,
		types:    types,
		registry: registry,
		exporter: exporter,
		issuer:   issuer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *InvoiceUseCase) Preview(ctx context.Context, paymentID string) (entities.Invoice, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Invoice{}, ErrInvalidPaymentID
	}
	log.Printf("[invoice][usecase] build start payment_id=%s", paymentID)

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if p.ID == "" {
		return entities.Invoice{}, ErrPaymentNotFound
	}
	if !p.IsCompleted() {
		log.Printf("[invoice][usecase] aborted payment_id=%s status=%s", p.ID, p.Status)
		return entities.Invoice{}, fmt.Errorf("%w: payment %s is %s, only completed payments are invoiced", ErrRender, p.ID, p.Status)
	}

	entity, ok := u.registry.Resolve(p.EntityID)
	if !ok {
		log.Printf("[invoice][usecase] aborted payment_id=%s unresolved entity_id=%s", p.ID, p.EntityID)
		return entities.Invoice{}, fmt.Errorf("%w: entity %q not found", ErrRender, p.EntityID)
	}

	pt, err := u.types.GetByID(ctx, p.PaymentTypeID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if pt.ID == "" {
		log.Printf("[invoice][usecase] aborted payment_id=%s unresolved payment_type_id=%s", p.ID, p.PaymentTypeID)
		return entities.Invoice{}, fmt.Errorf("%w: payment type %q not found", ErrRender, p.PaymentTypeID)
	}

	return BuildInvoice(p, entity, pt.Name, u.issuer, u.now()), nil
}

func (u *InvoiceUseCase) Render(ctx context.Context, paymentID string) (InvoiceFile, error) {
	if u.exporter == nil {
		return InvoiceFile{}, errors.New("invoice exporter not configured")
	}
	inv, err := u.Preview(ctx, paymentID)
	if err != nil {
		return InvoiceFile{}, err
	}

	data, err := u.exporter.ExportInvoice(ctx, inv)
	if err != nil {
		log.Printf("[invoice][usecase] export failed payment_id=%s err=%v", inv.PaymentID, err)
		return InvoiceFile{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	file := InvoiceFile{
		FileName:    inv.FileName(u.exporter.Extension()),
		ContentType: u.exporter.ContentType(),
		Data:        data,
		Invoice:     inv,
	}
	log.Printf("[invoice][usecase] render success payment_id=%s file=%s bytes=%d", inv.PaymentID, file.FileName, len(data))
	return file, nil
}

// BuildInvoice lays out the single-line invoice for a completed payment.
// The result depends only on its arguments.
func BuildInvoice(p entities.Payment, entity entities.Entity, typeName string, issuer entities.InvoiceIssuer, generatedAt time.Time) entities.Invoice {
	amount := money.Format(p.Amount)
	return entities.Invoice{
		Number:    strings.ToUpper(p.ID),
		PaymentID: p.ID,
		Issuer:    issuer,
		BillTo: entities.InvoiceParty{
			EntityID:  entity.EntityID(),
			Name:      entity.DisplayName(),
			Kind:      entity.Kind(),
			KindLabel: entity.Kind().Label(),
		},
		IssueDate:        p.Date,
		IssueDateDisplay: p.Date.Format(entities.InvoiceDateLayout),
		Items: []entities.InvoiceLine{
			{Concept: typeName, Amount: p.Amount, AmountDisplay: amount},
		},
		Total:        p.Amount,
		TotalDisplay: amount,
		Currency:     money.Currency,
		Footer:       invoiceFooter,
		GeneratedAt:  generatedAt,
	}
}
