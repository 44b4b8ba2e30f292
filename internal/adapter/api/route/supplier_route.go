package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
)

// RegisterSupplierRoutes registra as rotas de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController) {
	suppliers := r.Group("/suppliers")
	{
		suppliers.POST("", supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/scores", supplierController.Scores)
		suppliers.GET("/:id", supplierController.Get)
		suppliers.PUT("/:id", supplierController.Update)
	}
}

// RegisterShipmentRoutes registra as rotas de remessas
func RegisterShipmentRoutes(r *gin.RouterGroup, shipmentController *controller.ShipmentController) {
	shipments := r.Group("/shipments")
	{
		shipments.POST("", shipmentController.Create)
		shipments.GET("", shipmentController.List)
		shipments.PATCH("/:id/arrive", shipmentController.Arrive)
		shipments.POST("/:id/rate", shipmentController.Rate)
		shipments.PATCH("/:id/cancel", shipmentController.Cancel)
	}
}
