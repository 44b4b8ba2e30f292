package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/service/sales"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// SaleController gerencia as requisições de vendas
type SaleController struct {
	service *sales.Service
	logger  logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(service *sales.Service, logger logger.Logger) *SaleController {
	return &SaleController{service: service, logger: logger}
}

// Create registra uma venda
// @Summary Registrar venda
// @Description Debita o estoque e registra a venda com o preço e o custo do momento
// @Tags sales
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} sale.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	record, err := c.service.RecordSale(ctx, auth.GetScope(ctx), req.StockItemID, req.Quantity)
	if err != nil {
		respondError(ctx, c.logger, "erro ao registrar venda", err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// List lista as vendas do período
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	window, err := windowFromQuery(ctx)
	if err != nil {
		respondError(ctx, c.logger, "período inválido", err)
		return
	}

	records, err := c.service.ListSales(ctx, auth.GetScope(ctx), window)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar vendas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(records, len(records)))
}
