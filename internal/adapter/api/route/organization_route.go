package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/pkg/auth"
)

// RegisterOrganizationRoutes registra as rotas de organizações. Não exigem org-id.
func RegisterOrganizationRoutes(r *gin.RouterGroup, organizationController *controller.OrganizationController) {
	organizations := r.Group("/organizations")
	organizations.Use(auth.IdentityMiddleware())
	{
		organizations.POST("", auth.RoleAuthMiddleware(access.RoleOwner), organizationController.Create)
		organizations.GET("/:id", organizationController.Get)
	}
}
