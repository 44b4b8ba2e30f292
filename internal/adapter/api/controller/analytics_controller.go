package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/service/reports"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// AnalyticsController expõe os relatórios financeiros
type AnalyticsController struct {
	reports *reports.Service
	logger  logger.Logger
}

// NewAnalyticsController cria uma nova instância de AnalyticsController
func NewAnalyticsController(reports *reports.Service, logger logger.Logger) *AnalyticsController {
	return &AnalyticsController{reports: reports, logger: logger}
}

// Summary retorna o resumo financeiro do período
// @Summary Resumo financeiro
// @Description Receita, CMV, perdas, lucro bruto e lucro líquido calculados a partir dos registros do período
// @Tags analytics
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} finance.Summary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /analytics/summary [get]
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	window, err := windowFromQuery(ctx)
	if err != nil {
		respondError(ctx, c.logger, "período inválido", err)
		return
	}

	summary, err := c.reports.GetFinancialSummary(ctx, auth.GetScope(ctx), window)
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular resumo financeiro", err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
