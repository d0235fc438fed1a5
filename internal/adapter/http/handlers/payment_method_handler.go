package handlers

import (
	request "clinica_finanzas/internal/adapter/http/dto/request"
	response "clinica_finanzas/internal/adapter/http/dto/response"
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{usecase: uc}
}

// ListPaymentMethods godoc
// @Summary      List payment methods
// @Description  enabled=true returns only the methods offered for new payments.
// @Tags         payment-methods
// @Produce      json
// @Param        enabled  query     bool  false  "Only enabled methods"
// @Success      200      {array}   response.PaymentMethodResponse
// @Router       /payment-methods [get]
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	var (
		methods []entities.PaymentMethod
		err     error
	)
	if cast.ToBool(c.Query("enabled")) {
		methods, err = h.usecase.ListSelectable(c.Request.Context())
	} else {
		methods, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethods(methods))
}

// GetPaymentMethod godoc
// @Summary      Get a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        id   path      string  true  "Payment method ID"
// @Success      200  {object}  response.PaymentMethodResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payment-methods/{id} [get]
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	m, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(m))
}

// CreatePaymentMethod godoc
// @Summary      Register a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        method  body      request.PaymentMethodCreateRequest  true  "Payment method"
// @Success      201     {object}  response.PaymentMethodResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /payment-methods [post]
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment-method][handler] create failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentMethod(created))
}

// SetPaymentMethodEnabled godoc
// @Summary      Enable or disable a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        id       path      string                               true  "Payment method ID"
// @Param        enabled  body      request.PaymentMethodEnabledRequest  true  "Flag"
// @Success      200      {object}  response.PaymentMethodResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payment-methods/{id}/enabled [patch]
func (h *PaymentMethodHandler) SetPaymentMethodEnabled(c *gin.Context) {
	var payload request.PaymentMethodEnabledRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.SetEnabled(c.Request.Context(), c.Param("id"), *payload.Enabled)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(updated))
}

// DeletePaymentMethod godoc
// @Summary      Delete an unused payment method
// @Tags         payment-methods
// @Param        id   path  string  true  "Payment method ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
