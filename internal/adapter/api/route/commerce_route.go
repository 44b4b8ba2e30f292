package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
	}
}

// RegisterLossRoutes registra as rotas de perdas
func RegisterLossRoutes(r *gin.RouterGroup, lossController *controller.LossController) {
	losses := r.Group("/losses")
	{
		losses.POST("", lossController.Create)
		losses.GET("", lossController.List)
	}
}

// RegisterAnalyticsRoutes registra as rotas de relatórios
func RegisterAnalyticsRoutes(r *gin.RouterGroup, analyticsController *controller.AnalyticsController) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/summary", analyticsController.Summary)
	}
}
