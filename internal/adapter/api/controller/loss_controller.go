package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/service/losses"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// LossController gerencia as requisições de perdas
type LossController struct {
	service *losses.Service
	logger  logger.Logger
}

// NewLossController cria uma nova instância de LossController
func NewLossController(service *losses.Service, logger logger.Logger) *LossController {
	return &LossController{service: service, logger: logger}
}

// Create registra uma perda de estoque
// @Summary Registrar perda
// @Description Debita o estoque e registra a perda valorizada pelo custo
// @Tags losses
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param loss body dto.LossRequest true "Dados da perda"
// @Success 201 {object} loss.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /losses [post]
func (c *LossController) Create(ctx *gin.Context) {
	var req dto.LossRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	record, err := c.service.ReportLoss(ctx, auth.GetScope(ctx), req.StockItemID, req.Quantity, loss.Reason(req.Reason), req.Notes)
	if err != nil {
		respondError(ctx, c.logger, "erro ao registrar perda", err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// List lista as perdas do período
// @Summary Listar perdas
// @Tags losses
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /losses [get]
func (c *LossController) List(ctx *gin.Context) {
	window, err := windowFromQuery(ctx)
	if err != nil {
		respondError(ctx, c.logger, "período inválido", err)
		return
	}

	records, err := c.service.ListLosses(ctx, auth.GetScope(ctx), window)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar perdas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(records, len(records)))
}
