package handlers

import (
	"clinica_finanzas/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// DownloadInvoice godoc
// @Summary      Download the invoice of a completed payment
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /payments/{id}/invoice [get]
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	paymentID := c.Param("id")
	file, err := h.usecase.Render(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[invoice][handler] render failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapError(err))
		return
	}
	sendFile(c, file.FileName, file.ContentType, file.Data)
}

// PreviewInvoice godoc
// @Summary      Invoice document as JSON
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  entities.Invoice
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /payments/{id}/invoice/preview [get]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	inv, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, inv)
}
