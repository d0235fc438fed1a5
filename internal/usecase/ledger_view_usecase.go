package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/domain/money"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"
)

// LedgerQuery selects the rows of a ledger view. An empty Status keeps every
// status; Recent orders rows by date, newest first, instead of ledger order.
type LedgerQuery struct {
	Search string
	Status entities.PaymentStatus
	Recent bool
}

type LedgerRow struct {
	PaymentID         string
	EntityID          string
	EntityName        string
	EntityKindLabel   string
	PaymentTypeName   string
	PaymentMethodName string
	Amount            float64
	AmountDisplay     string
	Date              time.Time
	DateDisplay       string
	Status            entities.PaymentStatus
	StatusBadge       string
}

type LedgerView struct {
	Query        LedgerQuery
	Rows         []LedgerRow
	Count        int
	Total        float64
	TotalDisplay string
}

// LedgerExport is a spreadsheet rendering of a ledger view.
type LedgerExport struct {
	FileName    string
	ContentType string
	Data        []byte
}

type ILedgerViewUseCase interface {
	Build(ctx context.Context, q LedgerQuery) (LedgerView, error)
	Export(ctx context.Context, q LedgerQuery) (LedgerExport, error)
}

// ledgerViewKey identifies the inputs a view was derived from. Payments and
// catalogs only grow or lose unreferenced entries, so their sizes are enough
// to notice a change that affects the rows.
type ledgerViewKey struct {
	query    LedgerQuery
	payments int
	types    int
	methods  int
}

// LedgerViewUseCase derives the filtered, display-ready ledger tables.
type LedgerViewUseCase struct {
	payments interfaces.IPaymentRepository
	types    interfaces.IPaymentTypeRepository
	methods  interfaces.IPaymentMethodRepository
	registry IEntityRegistry
	exporter interfaces.ILedgerExporter
	now      func() time.Time

	mu      sync.Mutex
	lastKey ledgerViewKey
	last    *LedgerView
}

var _ ILedgerViewUseCase = (*LedgerViewUseCase)(nil)

func NewLedgerViewUseCase(
	payments interfaces.IPaymentRepository,
	types interfaces.IPaymentTypeRepository,
	methods interfaces.IPaymentMethodRepository,
	registry IEntityRegistry,
	exporter interfaces.ILedgerExporter,
) *LedgerViewUseCase {
	return &LedgerViewUseCase{
		payments: payments,
		types:    types,
		methods:  methods,
		registry: registry,
		exporter: exporter,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *LedgerViewUseCase) Build(ctx context.Context, q LedgerQuery) (LedgerView, error) {
	q.Search = strings.TrimSpace(q.Search)
	if q.Status != "" && !q.Status.Valid() {
		return LedgerView{}, fmt.Errorf("%w: unknown status %q", ErrValidation, q.Status)
	}

	payments, err := u.payments.List(ctx)
	if err != nil {
		return LedgerView{}, err
	}
	types, err := u.types.List(ctx)
	if err != nil {
		return LedgerView{}, err
	}
	methods, err := u.methods.List(ctx)
	if err != nil {
		return LedgerView{}, err
	}

	key := ledgerViewKey{query: q, payments: len(payments), types: len(types), methods: len(methods)}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.last != nil && u.lastKey == key {
		return cloneView(*u.last), nil
	}

	view := deriveLedgerView(q, payments, types, methods, u.registry)
	u.lastKey = key
	u.last = &view
	log.Printf("[ledger][view] derived search=%q status=%q recent=%t rows=%d", q.Search, q.Status, q.Recent, view.Count)
	return cloneView(view), nil
}

func (u *LedgerViewUseCase) Export(ctx context.Context, q LedgerQuery) (LedgerExport, error) {
	if u.exporter == nil {
		return LedgerExport{}, errors.New("ledger exporter not configured")
	}
	view, err := u.Build(ctx, q)
	if err != nil {
		return LedgerExport{}, err
	}

	sheet := interfaces.LedgerSheet{
		Title:   "Pagos",
		Headers: []string{"Fecha", "Nombre", "Tipo de entidad", "Concepto", "Método de pago", "Monto", "Estado"},
		Rows:    make([][]any, 0, len(view.Rows)),
		Footer:  []any{"", "", "", "", "Total", view.Total, ""},
	}
	for _, r := range view.Rows {
		sheet.Rows = append(sheet.Rows, []any{r.DateDisplay, r.EntityName, r.EntityKindLabel, r.PaymentTypeName, r.PaymentMethodName, r.Amount, string(r.Status)})
	}

	data, err := u.exporter.ExportLedger(ctx, sheet)
	if err != nil {
		log.Printf("[ledger][view] export failed err=%v", err)
		return LedgerExport{}, err
	}
	return LedgerExport{
		FileName:    "pagos_" + u.now().Format(entities.InvoiceFileDateLayout) + "." + u.exporter.Extension(),
		ContentType: u.exporter.ContentType(),
		Data:        data,
	}, nil
}

func deriveLedgerView(
	q LedgerQuery,
	payments []entities.Payment,
	types []entities.PaymentType,
	methods []entities.PaymentMethod,
	registry IEntityRegistry,
) LedgerView {
	typeNames := make(map[string]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}
	methodNames := make(map[string]string, len(methods))
	for _, m := range methods {
		methodNames[m.ID] = m.Name
	}

	var statusMatch func(entities.Payment) bool
	if q.Status != "" {
		statusMatch = MatchStatus(q.Status)
	}
	match := MatchAll(statusMatch, MatchEntityName(registry, q.Search))

	view := LedgerView{Query: q, Rows: []LedgerRow{}}
	amounts := make([]float64, 0, len(payments))
	for _, p := range payments {
		if match != nil && !match(p) {
			continue
		}
		view.Rows = append(view.Rows, toLedgerRow(p, typeNames, methodNames, registry))
		amounts = append(amounts, p.Amount)
	}

	if q.Recent {
		slices.SortStableFunc(view.Rows, func(a, b LedgerRow) int { return b.Date.Compare(a.Date) })
	}
	view.Count = len(view.Rows)
	view.Total = money.Sum(amounts...)
	view.TotalDisplay = money.Format(view.Total)
	return view
}

func toLedgerRow(p entities.Payment, typeNames, methodNames map[string]string, registry IEntityRegistry) LedgerRow {
	kind := p.EntityType
	name := entities.UnknownEntityName
	if e, ok := registry.Resolve(p.EntityID); ok {
		kind = e.Kind()
		name = e.DisplayName()
	}
	return LedgerRow{
		PaymentID:         p.ID,
		EntityID:          p.EntityID,
		EntityName:        name,
		EntityKindLabel:   kind.Label(),
		PaymentTypeName:   nameOr(typeNames, p.PaymentTypeID),
		PaymentMethodName: nameOr(methodNames, p.PaymentMethodID),
		Amount:            p.Amount,
		AmountDisplay:     money.Format(p.Amount),
		Date:              p.Date,
		DateDisplay:       p.Date.Format(entities.InvoiceDateLayout),
		Status:            p.Status,
		StatusBadge:       p.Status.Badge(),
	}
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return entities.UnknownEntityName
}

func cloneView(v LedgerView) LedgerView {
	v.Rows = slices.Clone(v.Rows)
	return v
}
