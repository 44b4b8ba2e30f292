package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/internal/service/reports"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// StockController gerencia as requisições relacionadas ao estoque
type StockController struct {
	ledger  *ledger.Ledger
	reports *reports.Service
	logger  logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(l *ledger.Ledger, reports *reports.Service, logger logger.Logger) *StockController {
	return &StockController{
		ledger:  l,
		reports: reports,
		logger:  logger,
	}
}

// List lista os itens de estoque da organização
// @Summary Listar estoque
// @Description Lista os itens de estoque da organização com status e valor calculados
// @Tags stock
// @Produce json
// @Param org-id header string true "ID da organização"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock [get]
func (c *StockController) List(ctx *gin.Context) {
	items, err := c.ledger.ListStock(ctx, auth.GetScope(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToStockItemResponses(items), len(items)))
}

// Create cadastra um novo item de estoque
// @Summary Criar item de estoque
// @Description Cadastra um item. A quantidade inicial é registrada como movimentação
// @Tags stock
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param item body dto.StockItemRequest true "Dados do item"
// @Success 201 {object} dto.StockItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock [post]
func (c *StockController) Create(ctx *gin.Context) {
	var req dto.StockItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	item, err := c.ledger.CreateItem(ctx, auth.GetScope(ctx), req.Attributes(), req.Quantity)
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar item", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStockItemResponse(item))
}

// Get busca um item de estoque pelo ID
// @Summary Obter item de estoque
// @Tags stock
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do item"
// @Success 200 {object} dto.StockItemResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stock/{id} [get]
func (c *StockController) Get(ctx *gin.Context) {
	item, err := c.ledger.GetItem(ctx, auth.GetScope(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar item", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// Update atualiza parcialmente um item
// @Summary Atualizar item de estoque
// @Description Atualiza os campos informados. Mudança de quantidade vira uma movimentação de ajuste
// @Tags stock
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do item"
// @Param item body dto.StockItemUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.StockItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /stock/{id} [patch]
func (c *StockController) Update(ctx *gin.Context) {
	var req dto.StockItemUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	item, err := c.ledger.UpdateItem(ctx, auth.GetScope(ctx), ctx.Param("id"), req.Patch(), req.Quantity)
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar item", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// Delete remove um item de estoque
// @Summary Excluir item de estoque
// @Tags stock
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do item"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stock/{id} [delete]
func (c *StockController) Delete(ctx *gin.Context) {
	if err := c.ledger.DeleteItem(ctx, auth.GetScope(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao excluir item", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Adjust aplica um ajuste manual de quantidade
// @Summary Ajustar quantidade
// @Description Soma o delta (positivo ou negativo) ao saldo do item
// @Tags stock
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do item"
// @Param adjust body dto.StockAdjustRequest true "Delta"
// @Success 200 {object} dto.StockItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /stock/{id}/adjust [post]
func (c *StockController) Adjust(ctx *gin.Context) {
	var req dto.StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	item, err := c.ledger.AdjustQuantity(ctx, auth.GetScope(ctx), ctx.Param("id"), req.Delta, stock.ReasonAdjustment)
	if err != nil {
		respondError(ctx, c.logger, "erro ao ajustar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// Movements lista as movimentações de um item
// @Summary Listar movimentações
// @Tags stock
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do item"
// @Param limit query int false "Quantidade máxima de registros" default(100)
// @Success 200 {object} dto.ListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stock/{id}/movements [get]
func (c *StockController) Movements(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	movements, err := c.ledger.ListMovements(ctx, auth.GetScope(ctx), ctx.Param("id"), limit)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar movimentações", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(movements, len(movements)))
}

// Valuation retorna o valor total do estoque
// @Summary Valor do estoque
// @Tags stock
// @Produce json
// @Param org-id header string true "ID da organização"
// @Success 200 {object} finance.InventoryValuation
// @Failure 403 {object} dto.ErrorResponse
// @Router /stock/valuation [get]
func (c *StockController) Valuation(ctx *gin.Context) {
	valuation, err := c.reports.Valuation(ctx, auth.GetScope(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular valor do estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, valuation)
}
