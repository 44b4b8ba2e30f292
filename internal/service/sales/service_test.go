package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/bizit/internal/adapter/repository/memory"
	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin  = access.NewScope("org-1", access.Actor{ID: "admin-1", OrgID: "org-1", Role: access.RoleAdmin})
	seller = access.NewScope("org-1", access.Actor{ID: "seller-1", OrgID: "org-1", Role: access.RoleEmployee, Department: access.DepartmentSales})
)

type fixture struct {
	ledger  *ledger.Ledger
	items   stock.Repository
	service *Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := memory.NewDB()
	items := memory.NewStockRepository(db)
	l := ledger.NewLedger(memory.NewStore(db), items, 3, logger.Nop())
	return &fixture{
		ledger:  l,
		items:   items,
		service: NewService(l, memory.NewSaleRepository(db), logger.Nop()),
	}
}

func (f *fixture) item(t *testing.T, quantity int) *stock.Item {
	t.Helper()
	item, err := f.ledger.CreateItem(context.Background(), admin, stock.Attributes{
		Name:         "Refrigerante 2L",
		Category:     "Bebidas",
		Price:        decimal.RequireFromString("9.99"),
		CostPrice:    decimal.RequireFromString("6.50"),
		MinThreshold: 5,
		MaxCapacity:  200,
	}, quantity)
	require.NoError(t, err)
	return item
}

func TestRecordSaleSnapshotsPriceAndCost(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item := f.item(t, 20)

	record, err := f.service.RecordSale(ctx, seller, item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "seller-1", record.SoldBy)
	assert.True(t, record.UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, record.UnitCost.Equal(decimal.RequireFromString("6.50")))
	assert.True(t, record.TotalPrice.Equal(decimal.RequireFromString("29.97")))
	assert.Equal(t, "Refrigerante 2L", record.StockItemName)

	stored, err := f.items.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, stored.Quantity)

	movements, err := f.items.ListMovements(ctx, item.ID, 1)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, stock.ReasonSale, movements[0].Reason)
	assert.Equal(t, -3, movements[0].Delta)
}

func TestRecordSaleRejectsInvalidQuantity(t *testing.T) {
	f := setup(t)
	item := f.item(t, 20)

	for _, qty := range []int{0, -2} {
		_, err := f.service.RecordSale(context.Background(), seller, item.ID, qty)
		assert.True(t, errors.Is(err, apperr.ErrInvalidQuantity))
	}
}

func TestRecordSaleInsufficientStockHasNoSideEffect(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item := f.item(t, 2)

	_, err := f.service.RecordSale(ctx, seller, item.ID, 3)
	assert.True(t, errors.Is(err, apperr.ErrInsufficientStock))

	stored, err := f.items.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)

	list, err := f.service.ListSales(ctx, admin, period.AllTime())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordSaleAuthorization(t *testing.T) {
	f := setup(t)
	item := f.item(t, 5)

	outsider := access.NewScope("org-2", access.Actor{ID: "x", OrgID: "org-2", Role: access.RoleOwner})
	_, err := f.service.RecordSale(context.Background(), outsider, item.ID, 1)
	assert.True(t, errors.Is(err, apperr.ErrAuthorization))

	noOrg := access.NewScope("", access.Actor{ID: "x", Role: access.RoleAdmin})
	_, err = f.service.RecordSale(context.Background(), noOrg, item.ID, 1)
	assert.True(t, errors.Is(err, apperr.ErrAuthorization))
}

func TestListSalesNewestFirst(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item := f.item(t, 10)

	first, err := f.service.RecordSale(ctx, seller, item.ID, 1)
	require.NoError(t, err)
	second, err := f.service.RecordSale(ctx, seller, item.ID, 2)
	require.NoError(t, err)

	list, err := f.service.ListSales(ctx, seller, period.AllTime())
	require.NoError(t, err)
	require.Len(t, list, 2)
	if list[0].SaleDate.Equal(list[1].SaleDate) {
		assert.ElementsMatch(t, []string{first.ID, second.ID}, []string{list[0].ID, list[1].ID})
	} else {
		assert.Equal(t, second.ID, list[0].ID)
	}
}
