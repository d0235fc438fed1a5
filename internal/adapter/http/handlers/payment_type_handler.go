package handlers

import (
	request "clinica_finanzas/internal/adapter/http/dto/request"
	response "clinica_finanzas/internal/adapter/http/dto/response"
	"clinica_finanzas/internal/usecase"
	"clinica_finanzas/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentTypeHandler struct {
	usecase usecase.IPaymentTypeUseCase
}

func NewPaymentTypeHandler(uc usecase.IPaymentTypeUseCase) *PaymentTypeHandler {
	return &PaymentTypeHandler{usecase: uc}
}

// ListPaymentTypes godoc
// @Summary      List payment types
// @Tags         payment-types
// @Produce      json
// @Success      200  {array}  response.PaymentTypeResponse
// @Router       /payment-types [get]
func (h *PaymentTypeHandler) ListPaymentTypes(c *gin.Context) {
	types, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTypes(types))
}

// GetPaymentType godoc
// @Summary      Get a payment type
// @Description  Includes the suggested default amount, when configured.
// @Tags         payment-types
// @Produce      json
// @Param        id   path      string  true  "Payment type ID"
// @Success      200  {object}  response.PaymentTypeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payment-types/{id} [get]
func (h *PaymentTypeHandler) GetPaymentType(c *gin.Context) {
	pt, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentType(pt))
}

// CreatePaymentType godoc
// @Summary      Register a payment type
// @Tags         payment-types
// @Accept       json
// @Produce      json
// @Param        type  body      request.PaymentTypeCreateRequest  true  "Payment type"
// @Success      201   {object}  response.PaymentTypeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payment-types [post]
func (h *PaymentTypeHandler) CreatePaymentType(c *gin.Context) {
	var payload request.PaymentTypeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		writeError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment-type][handler] create failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentType(created))
}

// DeletePaymentType godoc
// @Summary      Delete an unused payment type
// @Tags         payment-types
// @Param        id   path  string  true  "Payment type ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payment-types/{id} [delete]
func (h *PaymentTypeHandler) DeletePaymentType(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
