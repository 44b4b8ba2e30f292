package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/service/shipments"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// SupplierController gerencia as requisições de fornecedores
type SupplierController struct {
	service *shipments.Service
	logger  logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(service *shipments.Service, logger logger.Logger) *SupplierController {
	return &SupplierController{service: service, logger: logger}
}

// Create cadastra um fornecedor
// @Summary Criar fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	sup, err := c.service.CreateSupplier(ctx, auth.GetScope(ctx), req.Name, req.Contact())
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar fornecedor", err)
		return
	}

	ctx.JSON(http.StatusCreated, sup)
}

// List lista os fornecedores da organização
// @Summary Listar fornecedores
// @Tags suppliers
// @Produce json
// @Param org-id header string true "ID da organização"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	suppliers, err := c.service.ListSuppliers(ctx, auth.GetScope(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar fornecedores", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(suppliers, len(suppliers)))
}

// Get busca um fornecedor
// @Summary Obter fornecedor
// @Tags suppliers
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} supplier.Supplier
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	sup, err := c.service.GetSupplier(ctx, auth.GetScope(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar fornecedor", err)
		return
	}

	ctx.JSON(http.StatusOK, sup)
}

// Update atualiza os dados de um fornecedor
// @Summary Atualizar fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	sup, err := c.service.UpdateSupplier(ctx, auth.GetScope(ctx), ctx.Param("id"), req.Name, req.Contact())
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar fornecedor", err)
		return
	}

	ctx.JSON(http.StatusOK, sup)
}

// Scores retorna a nota média de cada fornecedor
// @Summary Notas dos fornecedores
// @Description Média das notas das remessas avaliadas. Fornecedores sem avaliação ficam de fora
// @Tags suppliers
// @Produce json
// @Param org-id header string true "ID da organização"
// @Success 200 {object} dto.SupplierScoresResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /suppliers/scores [get]
func (c *SupplierController) Scores(ctx *gin.Context) {
	scores, err := c.service.SupplierScores(ctx, auth.GetScope(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular notas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SupplierScoresResponse{Suppliers: scores, GeneratedAt: time.Now()})
}
