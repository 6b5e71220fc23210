package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingHandler) {
	orders := rg.Group(PathJobOrders)
	{
		orders.POST("/:order_number/payments", h.RecordPayment)
		orders.GET("/:order_number/payments", h.ListPayments)
		orders.POST("/:order_number/discount",
			middleware.RequireRoles("manager", "supervisor", "attendant"), h.SetDiscount)
		orders.POST("/:order_number/refund",
			middleware.RequireRoles("manager", "supervisor"), h.Refund)
	}

	payments := rg.Group(PathPayments)
	{
		payments.PATCH("/:payment_id", h.AdjustPayment)
		payments.DELETE("/:payment_id", h.DeletePayment)
	}
}
