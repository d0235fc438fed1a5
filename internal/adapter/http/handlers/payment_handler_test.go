package handlers

import (
	"clinica_finanzas/internal/adapter/http/handlers/mocks"
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/payments", h.ListPayments)
	r.POST("/v1/payments", h.CreatePayment)
	r.GET("/v1/payments/export", h.ExportPayments)
	r.GET("/v1/payments/:id", h.GetPayment)
	return r
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters to the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		views := mocks.NewMockILedgerViewUseCase(ctrl)
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), views)

		want := usecase.LedgerQuery{Search: "juan", Status: entities.PaymentStatusCompletado, Recent: true}
		views.EXPECT().Build(gomock.Any(), want).Return(usecase.LedgerView{
			Query:        want,
			Rows:         []usecase.LedgerRow{{PaymentID: "pay-1", EntityName: "Juan Pérez", Status: entities.PaymentStatusCompletado}},
			Count:        1,
			Total:        800,
			TotalDisplay: "$800.00",
		}, nil)

		w := serve(newPaymentRouter(h), http.MethodGet, "/v1/payments?q=juan&status=Completado&sort=recent", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["total_display"] != "$800.00" || body["count"] != 1.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		views := mocks.NewMockILedgerViewUseCase(ctrl)
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), views)

		views.EXPECT().Build(gomock.Any(), gomock.Any()).Return(usecase.LedgerView{}, fmt.Errorf("%w: unknown status", usecase.ErrValidation))

		w := serve(newPaymentRouter(h), http.MethodGet, "/v1/payments?status=Otro", "")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "VALIDATION_ERROR" {
			t.Fatalf("expected 400 VALIDATION_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), nil)

		w := serve(newPaymentRouter(h), http.MethodPost, "/v1/payments", "{")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_REQUEST" {
			t.Fatalf("expected 400 INVALID_REQUEST, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("non numeric amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), nil)

		w := serve(newPaymentRouter(h), http.MethodPost, "/v1/payments", `{"entity_id":"p-1","payment_type_id":"t-1","payment_method_id":"m-1","amount":"mucho"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "VALIDATION_ERROR" {
			t.Fatalf("expected 400 VALIDATION_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown type maps to reference error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.Payment{}, fmt.Errorf("%w: payment type \"t-9\" not found", usecase.ErrReference))

		w := serve(newPaymentRouter(h), http.MethodPost, "/v1/payments", `{"entity_id":"p-1","payment_type_id":"t-9","payment_method_id":"m-1","amount":100}`)
		if w.Code != http.StatusUnprocessableEntity || decodeError(t, w).Code != "REFERENCE_ERROR" {
			t.Fatalf("expected 422 REFERENCE_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		date := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Add(gomock.Any(), usecase.AddPaymentInput{
			EntityID: "p-1", PaymentTypeID: "t-1", PaymentMethodID: "m-1", Amount: 1200, Date: date,
		}).Return(entities.Payment{
			ID: "pay-9", EntityID: "p-1", EntityType: entities.EntityKindPatient, PaymentTypeID: "t-1",
			PaymentMethodID: "m-1", Amount: 1200, Date: date, Status: entities.PaymentStatusCompletado,
		}, nil)

		w := serve(newPaymentRouter(h), http.MethodPost, "/v1/payments", `{"entity_id":"p-1","payment_type_id":"t-1","payment_method_id":"m-1","amount":"1200","date":"2024-03-07"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"amount_display":"$1,200.00"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().Get(gomock.Any(), "pay-404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		w := serve(newPaymentRouter(h), http.MethodGet, "/v1/payments/pay-404", "")
		if w.Code != http.StatusNotFound || decodeError(t, w).Code != "PAYMENT_NOT_FOUND" {
			t.Fatalf("expected 404 PAYMENT_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().Get(gomock.Any(), "pay-1").Return(entities.Payment{}, errors.New("db"))

		w := serve(newPaymentRouter(h), http.MethodGet, "/v1/payments/pay-1", "")
		if w.Code != http.StatusInternalServerError || decodeError(t, w).Code != "INTERNAL_ERROR" {
			t.Fatalf("expected 500 INTERNAL_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_ExportPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	views := mocks.NewMockILedgerViewUseCase(ctrl)
	h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), views)

	views.EXPECT().Export(gomock.Any(), usecase.LedgerQuery{Search: "juan"}).Return(usecase.LedgerExport{
		FileName:    "pagos_2024-04-01.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}, nil)

	w := serve(newPaymentRouter(h), http.MethodGet, "/v1/payments/export?q=juan", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename=pagos_2024-04-01.xlsx` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if w.Body.String() != "PK" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
