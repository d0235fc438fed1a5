package handlers

import (
	"clinica_finanzas/internal/adapter/http/handlers/mocks"
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/payments/:id/invoice", h.DownloadInvoice)
	r.GET("/v1/payments/:id/invoice/preview", h.PreviewInvoice)
	return r
}

func TestInvoiceHandler_DownloadInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Render(gomock.Any(), "pay-1").Return(usecase.InvoiceFile{
			FileName:    "factura_Juan_Pérez_2024-03-01.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.3"),
		}, nil)

		w := serve(newInvoiceRouter(h), http.MethodGet, "/v1/payments/pay-1/invoice", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		_, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
		if err != nil || params["filename"] != "factura_Juan_Pérez_2024-03-01.pdf" {
			t.Fatalf("unexpected disposition %q err=%v", w.Header().Get("Content-Disposition"), err)
		}
	})

	t.Run("render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Render(gomock.Any(), "pay-6").Return(usecase.InvoiceFile{}, fmt.Errorf("%w: entity \"ghost\" not found", usecase.ErrRender))

		w := serve(newInvoiceRouter(h), http.MethodGet, "/v1/payments/pay-6/invoice", "")
		if w.Code != http.StatusUnprocessableEntity || decodeError(t, w).Code != "RENDER_ERROR" {
			t.Fatalf("expected 422 RENDER_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestInvoiceHandler_PreviewInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Preview(gomock.Any(), "pay-1").Return(entities.Invoice{Number: "PAY-1", PaymentID: "pay-1", TotalDisplay: "$800.00"}, nil)

		w := serve(newInvoiceRouter(h), http.MethodGet, "/v1/payments/pay-1/invoice/preview", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var inv entities.Invoice
		if err := json.Unmarshal(w.Body.Bytes(), &inv); err != nil || inv.Number != "PAY-1" || inv.TotalDisplay != "$800.00" {
			t.Fatalf("unexpected invoice %+v err=%v", inv, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Preview(gomock.Any(), "pay-404").Return(entities.Invoice{}, usecase.ErrPaymentNotFound)

		w := serve(newInvoiceRouter(h), http.MethodGet, "/v1/payments/pay-404/invoice/preview", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
