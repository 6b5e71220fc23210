package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addExitPermitRoutes(rg *gin.RouterGroup, h *handlers.ExitPermitHandler) {
	orders := rg.Group(PathJobOrders)
	{
		orders.POST("/:order_number/exit-permit",
			middleware.RequireRoles("gatekeeper", "manager", "attendant"), h.IssueExitPermit)
		orders.GET("/:order_number/exit-permit", h.GetExitPermit)
		orders.GET("/:order_number/exit-permit/slip", h.GetExitPermitSlip)
	}
}
