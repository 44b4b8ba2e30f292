package route_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
	"github.com/hugohenrick/bizit/internal/adapter/api/route"
	"github.com/hugohenrick/bizit/internal/adapter/repository"
	"github.com/hugohenrick/bizit/internal/adapter/repository/memory"
	"github.com/hugohenrick/bizit/internal/domain/organization"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/internal/service/losses"
	"github.com/hugohenrick/bizit/internal/service/reports"
	"github.com/hugohenrick/bizit/internal/service/sales"
	"github.com/hugohenrick/bizit/internal/service/shipments"
	"github.com/hugohenrick/bizit/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminHeaders = map[string]string{"user-id": "admin-1", "user-role": "admin", "org-id": "org-1"}
	sellerHeaders = map[string]string{
		"user-id": "seller-1", "user-role": "employee", "user-department": "sales", "org-id": "org-1",
	}
	ownerHeaders = map[string]string{"user-id": "owner-1", "user-role": "owner", "org-id": "org-1"}
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := memory.NewDB()
	orgs := memory.NewOrganizationRepository(db)
	for _, org := range []*organization.Organization{
		{ID: "org-1", Name: "Mercado Central", OwnerID: "owner-1"},
		{ID: "org-2", Name: "Mercado Norte", OwnerID: "owner-2"},
	} {
		require.NoError(t, orgs.Create(context.Background(), org))
	}

	log := logger.Nop()
	items := memory.NewStockRepository(db)
	saleRepo := memory.NewSaleRepository(db)
	lossRepo := memory.NewLossRepository(db)
	l := ledger.NewLedger(memory.NewStore(db), items, ledger.DefaultMaxRetries, log)
	reportService := reports.NewService(saleRepo, lossRepo, items)
	shipmentService := shipments.NewService(l, memory.NewSupplierRepository(db), items, log)

	r := gin.New()
	route.RegisterRoutes(r.Group("/api/v1"), route.Controllers{
		Organization: controller.NewOrganizationController(orgs, log),
		Stock:        controller.NewStockController(l, reportService, log),
		Sale:         controller.NewSaleController(sales.NewService(l, saleRepo, log), log),
		Loss:         controller.NewLossController(losses.NewService(l, lossRepo, log), log),
		Analytics:    controller.NewAnalyticsController(reportService, log),
		Supplier:     controller.NewSupplierController(shipmentService, log),
		Shipment:     controller.NewShipmentController(shipmentService, log),
	}, repository.NewOrganizationValidator(orgs))
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func createItem(t *testing.T, r http.Handler, name string, quantity int) string {
	t.Helper()
	w, body := do(t, r, http.MethodPost, "/api/v1/stock", map[string]interface{}{
		"name":       name,
		"category":   "Mercearia",
		"price":      "12.50",
		"cost_price": "8.00",
		"quantity":   quantity,
	}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return body["id"].(string)
}

func TestIdentityAndOrganizationAreRequired(t *testing.T) {
	r := newRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/v1/stock", nil, map[string]string{"org-id": "org-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/stock", nil, map[string]string{"user-id": "admin-1", "user-role": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/stock", nil, map[string]string{"user-id": "admin-1", "user-role": "admin", "org-id": "nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOwnerOverride(t *testing.T) {
	r := newRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/v1/stock?org_id=org-2", nil, ownerHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/stock?org_id=org-2", nil, map[string]string{
		"user-id": "owner-2", "user-role": "owner", "org-id": "org-1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStockAndSalesFlow(t *testing.T) {
	r := newRouter(t)
	id := createItem(t, r, "Arroz 5kg", 10)

	w, body := do(t, r, http.MethodPost, "/api/v1/sales", map[string]interface{}{"stock_item_id": id, "quantity": 2}, sellerHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "25", body["total_price"])

	w, body = do(t, r, http.MethodPost, "/api/v1/sales", map[string]interface{}{"stock_item_id": id, "quantity": 50}, sellerHeaders)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "insufficient_stock", body["kind"])

	w, body = do(t, r, http.MethodGet, "/api/v1/stock/"+id, nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 8, body["quantity"])
	assert.Equal(t, "low", body["status"])

	w, body = do(t, r, http.MethodGet, "/api/v1/stock/"+id+"/movements", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["count"])

	w, body = do(t, r, http.MethodGet, "/api/v1/analytics/summary?from=2000-01-01", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "25", body["revenue"])
	assert.Equal(t, "16", body["cogs"])
	assert.Equal(t, "9", body["net_profit"])
}

func TestStockPermissionsAndValidation(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/stock", map[string]interface{}{
		"name": "Óleo", "category": "Mercearia", "price": "7", "cost_price": "5",
	}, sellerHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "authorization", body["kind"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/stock", map[string]interface{}{"category": "Mercearia"}, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, r, http.MethodGet, "/api/v1/stock/missing", nil, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", body["kind"])

	w, _ = do(t, r, http.MethodGet, "/api/v1/sales?from=ontem", nil, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/sales?from=2026-02-01&to=2026-01-01", nil, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustUpdateDeleteAndValuation(t *testing.T) {
	r := newRouter(t)
	id := createItem(t, r, "Café 500g", 20)

	w, body := do(t, r, http.MethodPost, "/api/v1/stock/"+id+"/adjust", map[string]interface{}{"delta": -5}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 15, body["quantity"])

	w, body = do(t, r, http.MethodPatch, "/api/v1/stock/"+id, map[string]interface{}{"price": "20", "quantity": 90}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 90, body["quantity"])
	assert.Equal(t, "high", body["status"])

	w, body = do(t, r, http.MethodGet, "/api/v1/stock/valuation", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1800", body["total_value"])
	assert.Equal(t, "720", body["total_cost"])

	w, _ = do(t, r, http.MethodDelete, "/api/v1/stock/"+id, nil, adminHeaders)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/stock/"+id, nil, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLossesFlow(t *testing.T) {
	r := newRouter(t)
	id := createItem(t, r, "Leite 1L", 30)

	w, body := do(t, r, http.MethodPost, "/api/v1/losses", map[string]interface{}{
		"stock_item_id": id, "quantity": 3, "reason": "expired",
	}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Expired", body["reason"])
	assert.Equal(t, "24", body["total_loss"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/losses", map[string]interface{}{
		"stock_item_id": id, "quantity": 1, "reason": "sumiu",
	}, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, r, http.MethodGet, "/api/v1/losses", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
}

func TestShipmentFlow(t *testing.T) {
	r := newRouter(t)
	itemID := createItem(t, r, "Açúcar 1kg", 10)

	w, body := do(t, r, http.MethodPost, "/api/v1/suppliers", map[string]interface{}{
		"name": "Distribuidora Sul", "email": "vendas@sul.com.br",
	}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	supplierID := body["id"].(string)

	w, body = do(t, r, http.MethodPost, "/api/v1/shipments", map[string]interface{}{
		"supplier_id": supplierID, "stock_item_id": itemID, "expected_quantity": 50, "expected_date": "2026-05-20",
	}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	shipmentID := body["id"].(string)
	assert.Equal(t, "Pending", body["status"])

	w, body = do(t, r, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/arrive", map[string]interface{}{
		"received_quantity": 50, "damaged_quantity": 5,
	}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Arrived", body["status"])

	w, body = do(t, r, http.MethodGet, "/api/v1/stock/"+itemID, nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 55, body["quantity"])

	w, _ = do(t, r, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/cancel", nil, adminHeaders)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, body = do(t, r, http.MethodGet, "/api/v1/suppliers/scores", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	scores := body["suppliers"].([]interface{})
	require.Len(t, scores, 1)
	assert.Equal(t, supplierID, scores[0].(map[string]interface{})["supplier_id"])
}

func TestArriveWithoutRating(t *testing.T) {
	r := newRouter(t)

	_, body := do(t, r, http.MethodPost, "/api/v1/suppliers", map[string]interface{}{"name": "Atacado Leste"}, adminHeaders)
	supplierID := body["id"].(string)
	_, body = do(t, r, http.MethodPost, "/api/v1/shipments", map[string]interface{}{
		"supplier_id": supplierID, "expected_quantity": 10, "expected_date": "2026-05-20",
	}, adminHeaders)
	shipmentID := body["id"].(string)

	w, body := do(t, r, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/arrive", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Arrived", body["status"])
	assert.Nil(t, body["score"])
}

func TestOrganizations(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/organizations", map[string]interface{}{"name": "Filial Oeste"}, map[string]string{
		"user-id": "owner-1", "user-role": "owner",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orgID := body["id"].(string)
	assert.Equal(t, "owner-1", body["owner_id"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/organizations", map[string]interface{}{"name": "X"}, adminHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/organizations/"+orgID, nil, map[string]string{"user-id": "owner-1", "user-role": "owner"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/organizations/"+orgID, nil, adminHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/stock", nil, map[string]string{"user-id": "owner-1", "user-role": "owner", "org-id": orgID})
	assert.Equal(t, http.StatusOK, w.Code)
}
