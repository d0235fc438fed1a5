package handlers

import (
	"clinica_finanzas/internal/usecase"
	"clinica_finanzas/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapError translates use case errors into API errors. Validation and
// reference errors carry their detail so forms can show it next to the field.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentType):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReference):
		return pkg.NewDomainError("REFERENCE_ERROR", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRender):
		return pkg.NewDomainError("RENDER_ERROR", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrReferenceInUse):
		return pkg.NewDomainError("REFERENCE_IN_USE", "Still referenced by recorded payments", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentTypeNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_TYPE_NOT_FOUND", "Payment type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
