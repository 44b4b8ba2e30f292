package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/organization"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// OrganizationController gerencia as requisições relacionadas às organizações
type OrganizationController struct {
	repository organization.Repository
	logger     logger.Logger
}

// NewOrganizationController cria uma nova instância de OrganizationController
func NewOrganizationController(repository organization.Repository, logger logger.Logger) *OrganizationController {
	return &OrganizationController{
		repository: repository,
		logger:     logger,
	}
}

// Create cria uma nova organização para o dono autenticado
// @Summary Cria uma nova organização
// @Description Cria uma organização cujo dono é o usuário da requisição
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.OrganizationRequest true "Dados da organização"
// @Success 201 {object} organization.Organization
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /organizations [post]
func (c *OrganizationController) Create(ctx *gin.Context) {
	var request dto.OrganizationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", err)
		return
	}

	actor := auth.GetCurrentActor(ctx)
	org, err := organization.NewOrganization(request.Name, actor.ID)
	if err != nil {
		badRequest(ctx, "Requisição inválida", err)
		return
	}

	if err := c.repository.Create(ctx, org); err != nil {
		respondError(ctx, c.logger, "Erro ao criar organização", err)
		return
	}

	c.logger.Info("organização criada", "org_id", org.ID, "owner_id", org.OwnerID)
	ctx.JSON(http.StatusCreated, org)
}

// Get busca uma organização. Só o dono ou membros da própria organização têm acesso.
// @Summary Obtém uma organização
// @Tags organizations
// @Produce json
// @Param id path string true "ID da organização"
// @Success 200 {object} organization.Organization
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /organizations/{id} [get]
func (c *OrganizationController) Get(ctx *gin.Context) {
	org, err := c.repository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "Erro ao buscar organização", err)
		return
	}

	actor := auth.GetCurrentActor(ctx)
	if !org.IsOwnedBy(actor.ID) && ctx.GetHeader("org-id") != org.ID {
		respondError(ctx, c.logger, "Acesso negado", apperr.Authorization("organização de outro dono"))
		return
	}

	ctx.JSON(http.StatusOK, org)
}
