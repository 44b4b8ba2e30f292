package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/tenant"
)

// Controllers agrupa os controladores expostos pela API
type Controllers struct {
	Organization *controller.OrganizationController
	Stock        *controller.StockController
	Sale         *controller.SaleController
	Loss         *controller.LossController
	Analytics    *controller.AnalyticsController
	Supplier     *controller.SupplierController
	Shipment     *controller.ShipmentController
}

// RegisterRoutes registra todas as rotas da API. As rotas de negócio exigem identidade e organização.
func RegisterRoutes(api *gin.RouterGroup, ctrls Controllers, validator tenant.OrganizationValidator) {
	RegisterOrganizationRoutes(api, ctrls.Organization)

	scoped := api.Group("")
	scoped.Use(auth.IdentityMiddleware(), tenant.OrganizationMiddleware(validator))
	{
		RegisterStockRoutes(scoped, ctrls.Stock)
		RegisterSaleRoutes(scoped, ctrls.Sale)
		RegisterLossRoutes(scoped, ctrls.Loss)
		RegisterAnalyticsRoutes(scoped, ctrls.Analytics)
		RegisterSupplierRoutes(scoped, ctrls.Supplier)
		RegisterShipmentRoutes(scoped, ctrls.Shipment)
	}
}
