package handlers

import (
	request "clinica_finanzas/internal/adapter/http/dto/request"
	response "clinica_finanzas/internal/adapter/http/dto/response"
	"clinica_finanzas/internal/usecase"
	"clinica_finanzas/pkg"
	"log"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment ledger and its table view.
type PaymentHandler struct {
	payments usecase.IPaymentUseCase
	views    usecase.ILedgerViewUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, views usecase.ILedgerViewUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, views: views}
}

// ListPayments godoc
// @Summary      Payments table
// @Description  Ledger view filtered by entity name and status, with display columns and total.
// @Tags         payments
// @Produce      json
// @Param        q       query     string  false  "Entity name contains (case-insensitive)"
// @Param        status  query     string  false  "Completado | Pendiente | Fallido"
// @Param        sort    query     string  false  "recent = newest first"
// @Success      200     {object}  response.LedgerViewResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var params request.LedgerQueryRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.views.Build(c.Request.Context(), params.ToQuery())
	if err != nil {
		log.Printf("[payment][handler] list failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerView(view))
}

// CreatePayment godoc
// @Summary      Register a payment
// @Description  Appends a completed payment to the ledger.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.PaymentCreateRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		writeError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	created, err := h.payments.Add(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment][handler] create failed entity_id=%s err=%v", in.EntityID, err)
		writeError(c, mapError(err))
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s", created.ID)
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.payments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ExportPayments godoc
// @Summary      Export the payments table
// @Description  Same filters as the table, written as a spreadsheet.
// @Tags         payments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q       query  string  false  "Entity name contains (case-insensitive)"
// @Param        status  query  string  false  "Completado | Pendiente | Fallido"
// @Param        sort    query  string  false  "recent = newest first"
// @Success      200     {file}  file
// @Failure      400     {object}  pkg.HTTPError
// @Router       /payments/export [get]
func (h *PaymentHandler) ExportPayments(c *gin.Context) {
	var params request.LedgerQueryRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	out, err := h.views.Export(c.Request.Context(), params.ToQuery())
	if err != nil {
		log.Printf("[payment][handler] export failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	sendFile(c, out.FileName, out.ContentType, out.Data)
}

// sendFile writes an attachment. mime encodes non-ASCII file names
// (accented patient names) as RFC 2231 parameters.
func sendFile(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Data(http.StatusOK, contentType, data)
}
