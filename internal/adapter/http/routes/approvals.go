package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathApprovals = "/approvals"
)

func addApprovalRoutes(rg *gin.RouterGroup, h *handlers.ApprovalHandler) {
	orders := rg.Group(PathJobOrders)
	{
		orders.POST("/:order_number/approvals", h.RequestServiceAction)
		orders.POST("/:order_number/approvals/new-service", h.RequestNewServiceLine)
		orders.GET("/:order_number/approvals", h.ListByOrder)
	}

	approvals := rg.Group(PathApprovals)
	{
		approvals.GET("/pending", h.ListPending)
		approvals.POST("/:request_id/decision",
			middleware.RequireRoles("manager", "supervisor"), h.Decide)
	}
}
