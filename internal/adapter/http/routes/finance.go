package routes

import (
	"clinica_finanzas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEntities       = "/entities"
	PathPayments       = "/payments"
	PathPaymentMethods = "/payment-methods"
	PathPaymentTypes   = "/payment-types"
)

func addEntityRoutes(rg *gin.RouterGroup, entityHandler *handlers.EntityHandler) {
	rg.GET(PathEntities+"/:id", entityHandler.GetEntity)
}

func addFinanceRoutes(rg *gin.RouterGroup, app *application) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("", app.paymentHandler.ListPayments)
		payments.POST("", app.paymentHandler.CreatePayment)
		payments.GET("/export", app.paymentHandler.ExportPayments)
		payments.GET("/:id", app.paymentHandler.GetPayment)
		payments.GET("/:id/invoice", app.invoiceHandler.DownloadInvoice)
		payments.GET("/:id/invoice/preview", app.invoiceHandler.PreviewInvoice)
	}

	methods := rg.Group(PathPaymentMethods)
	{
		methods.GET("", app.paymentMethodHandler.ListPaymentMethods)
		methods.POST("", app.paymentMethodHandler.CreatePaymentMethod)
		methods.GET("/:id", app.paymentMethodHandler.GetPaymentMethod)
		methods.PATCH("/:id/enabled", app.paymentMethodHandler.SetPaymentMethodEnabled)
		methods.DELETE("/:id", app.paymentMethodHandler.DeletePaymentMethod)
	}

	types := rg.Group(PathPaymentTypes)
	{
		types.GET("", app.paymentTypeHandler.ListPaymentTypes)
		types.POST("", app.paymentTypeHandler.CreatePaymentType)
		types.GET("/:id", app.paymentTypeHandler.GetPaymentType)
		types.DELETE("/:id", app.paymentTypeHandler.DeletePaymentType)
	}
}
