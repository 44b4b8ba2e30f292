package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/pkg/tenant"
)

// Cabeçalhos preenchidos pelo gateway de autenticação
const (
	HeaderUserID     = "user-id"
	HeaderUserRole   = "user-role"
	HeaderDepartment = "user-department"
)

// IdentityMiddleware lê a identidade já autenticada pelo gateway
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho 'user-id' não foi fornecido",
			))
			return
		}

		role := access.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Papel inválido",
				"O cabeçalho 'user-role' deve ser owner, admin ou employee",
			))
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", string(role))
		c.Set("user_department", strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderDepartment))))

		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação de papel/função do usuário
func RoleAuthMiddleware(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		for _, r := range roles {
			if userRole == string(r) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewKindErrorResponse(
			http.StatusForbidden,
			"authorization",
			"Acesso negado",
			"Você não tem permissão para acessar este recurso",
		))
	}
}

// GetCurrentActor monta o ator da requisição a partir do contexto
func GetCurrentActor(c *gin.Context) access.Actor {
	return access.Actor{
		ID:         c.GetString("user_id"),
		OrgID:      tenant.GetOrgID(c),
		Role:       access.Role(c.GetString("user_role")),
		Department: access.Department(c.GetString("user_department")),
	}
}

// GetScope retorna o escopo de organização da requisição
func GetScope(c *gin.Context) access.Scope {
	actor := GetCurrentActor(c)
	return access.NewScope(actor.OrgID, actor)
}
