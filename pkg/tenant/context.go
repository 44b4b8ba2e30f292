package tenant

import (
	"context"
)

type contextKey string

const (
	// orgIDKey é a chave usada para armazenar a organização no contexto
	orgIDKey contextKey = "org_id"
)

// SetOrgIDContext define a organização no contexto
func SetOrgIDContext(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, orgIDKey, orgID)
}

// GetOrgIDFromContext obtém a organização do contexto
func GetOrgIDFromContext(ctx context.Context) string {
	if orgID, ok := ctx.Value(orgIDKey).(string); ok {
		return orgID
	}
	return ""
}

// GetOrgID obtém a organização de um contexto do Gin
func GetOrgID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		if orgID := gc.GetString("org_id"); orgID != "" {
			return orgID
		}
	}

	if ctx, ok := c.(context.Context); ok {
		return GetOrgIDFromContext(ctx)
	}

	return ""
}
