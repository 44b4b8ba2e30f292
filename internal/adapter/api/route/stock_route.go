package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
)

// RegisterStockRoutes registra as rotas do módulo de estoque
func RegisterStockRoutes(r *gin.RouterGroup, stockController *controller.StockController) {
	stock := r.Group("/stock")
	{
		stock.GET("", stockController.List)
		stock.POST("", stockController.Create)
		stock.GET("/valuation", stockController.Valuation)
		stock.GET("/:id", stockController.Get)
		stock.PATCH("/:id", stockController.Update)
		stock.DELETE("/:id", stockController.Delete)
		stock.POST("/:id/adjust", stockController.Adjust)
		stock.GET("/:id/movements", stockController.Movements)
	}
}
