package routes

import (
	"woodcraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:design_id", paymentHandler.CreatePaymentByDesignID)
		payments.GET("/:design_id", paymentHandler.GetPaymentByDesignID)
	}
}
