package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/pkg/tenant"
	"github.com/stretchr/testify/assert"
)

type fakeValidator map[string]string

func (f fakeValidator) OwnerOf(ctx context.Context, orgID string) (string, error) {
	owner, ok := f[orgID]
	if !ok {
		return "", tenant.ErrOrganizationNotFound
	}
	return owner, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	validator := fakeValidator{"org-1": "owner-1", "org-2": "owner-1", "org-3": "owner-9"}
	r.Use(IdentityMiddleware(), tenant.OrganizationMiddleware(validator))
	r.GET("/scope", func(c *gin.Context) {
		scope := GetScope(c)
		c.JSON(http.StatusOK, gin.H{"org": scope.OrgID, "role": scope.Actor.Role, "dept": scope.Actor.Department})
	})
	r.GET("/admin", RoleAuthMiddleware(access.RoleOwner, access.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func request(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentityIsRequired(t *testing.T) {
	r := newRouter()

	w := request(r, "/scope", map[string]string{"org-id": "org-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, "/scope", map[string]string{"user-id": "u1", "user-role": "gerente", "org-id": "org-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScopeFromHeaders(t *testing.T) {
	r := newRouter()

	w := request(r, "/scope", map[string]string{
		"user-id": "u1", "user-role": "Employee", "user-department": "sales", "org-id": "org-1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"org":"org-1","role":"employee","dept":"sales"}`, w.Body.String())

	w = request(r, "/scope", map[string]string{"user-id": "u1", "user-role": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(r, "/scope", map[string]string{"user-id": "u1", "user-role": "admin", "org-id": "org-x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOwnerOverride(t *testing.T) {
	r := newRouter()
	owner := map[string]string{"user-id": "owner-1", "user-role": "owner", "org-id": "org-1"}

	w := request(r, "/scope?org_id=org-2", owner)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"org":"org-2"`)

	w = request(r, "/scope?org_id=org-3", owner)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := map[string]string{"user-id": "owner-1", "user-role": "admin", "org-id": "org-1"}
	w = request(r, "/scope?org_id=org-2", admin)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleAuthMiddleware(t *testing.T) {
	r := newRouter()

	w := request(r, "/admin", map[string]string{"user-id": "u1", "user-role": "employee", "org-id": "org-1"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(r, "/admin", map[string]string{"user-id": "u1", "user-role": "admin", "org-id": "org-1"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}
