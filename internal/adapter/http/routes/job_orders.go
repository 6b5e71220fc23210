package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobOrders = "/job-orders"
)

func addJobOrderRoutes(rg *gin.RouterGroup, h *handlers.JobOrderHandler) {
	orders := rg.Group(PathJobOrders)
	{
		orders.POST("", h.UpsertJobOrder)
		orders.GET("", h.ListJobOrders)
		orders.GET("/:order_number", h.GetJobOrder)
		orders.POST("/:order_number/advance", h.AdvanceStage)
		orders.POST("/:order_number/quality-decision", h.QualityDecision)
		orders.POST("/:order_number/cancel", h.CancelJobOrder)
	}
}
