package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
)

// OrganizationValidator consulta o dono de uma organização
type OrganizationValidator interface {
	// OwnerOf retorna o ID do dono ou ErrOrganizationNotFound
	OwnerOf(ctx context.Context, orgID string) (string, error)
}

// OrganizationMiddleware resolve a organização da requisição. O cabeçalho org-id define o escopo;
// donos podem trocar de organização com ?org_id= quando são donos da organização alvo.
// Deve rodar depois do middleware de identidade.
func OrganizationMiddleware(validator OrganizationValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.GetHeader("org-id")

		if requested := c.Query("org_id"); requested != "" && requested != orgID {
			owner, err := validator.OwnerOf(c.Request.Context(), requested)
			if err != nil && !errors.Is(err, ErrOrganizationNotFound) {
				abortInternal(c, err)
				return
			}
			if err != nil || c.GetString("user_role") != "owner" || owner != c.GetString("user_id") {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewKindErrorResponse(
					http.StatusForbidden,
					"authorization",
					"Acesso negado",
					ErrNotOwner.Error(),
				))
				return
			}
			orgID = requested
		} else if orgID != "" {
			if _, err := validator.OwnerOf(c.Request.Context(), orgID); err != nil {
				if !errors.Is(err, ErrOrganizationNotFound) {
					abortInternal(c, err)
					return
				}
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewKindErrorResponse(
					http.StatusForbidden,
					"authorization",
					"Organização inválida",
					"A organização informada não existe",
				))
				return
			}
		}

		if orgID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewKindErrorResponse(
				http.StatusBadRequest,
				"validation",
				"Organização não fornecida",
				"O cabeçalho 'org-id' é obrigatório",
			))
			return
		}

		c.Set("org_id", orgID)
		c.Request = c.Request.WithContext(SetOrgIDContext(c.Request.Context(), orgID))

		c.Next()
	}
}

func abortInternal(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
		http.StatusInternalServerError,
		"Erro ao validar organização",
		err.Error(),
	))
}
