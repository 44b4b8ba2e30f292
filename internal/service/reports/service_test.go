package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/bizit/internal/adapter/repository/memory"
	"github.com/hugohenrick/bizit/internal/domain/access"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/internal/service/losses"
	"github.com/hugohenrick/bizit/internal/service/sales"
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
	sales   *sales.Service
	losses  *losses.Service
	reports *Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := memory.NewDB()
	items := memory.NewStockRepository(db)
	saleRepo := memory.NewSaleRepository(db)
	lossRepo := memory.NewLossRepository(db)
	l := ledger.NewLedger(memory.NewStore(db), items, 3, logger.Nop())
	return &fixture{
		ledger:  l,
		sales:   sales.NewService(l, saleRepo, logger.Nop()),
		losses:  losses.NewService(l, lossRepo, logger.Nop()),
		reports: NewService(saleRepo, lossRepo, items),
	}
}

func (f *fixture) item(t *testing.T, name, price, cost string, quantity int) *stock.Item {
	t.Helper()
	item, err := f.ledger.CreateItem(context.Background(), admin, stock.Attributes{
		Name:         name,
		Category:     "Geral",
		Price:        decimal.RequireFromString(price),
		CostPrice:    decimal.RequireFromString(cost),
		MinThreshold: 10,
		MaxCapacity:  100,
	}, quantity)
	require.NoError(t, err)
	return item
}

func TestFinancialSummaryIgnoresLaterPriceChanges(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item := f.item(t, "Queijo", "30.00", "20.00", 50)

	_, err := f.sales.RecordSale(ctx, seller, item.ID, 2)
	require.NoError(t, err)
	_, err = f.losses.ReportLoss(ctx, admin, item.ID, 1, loss.ReasonDamaged, "")
	require.NoError(t, err)

	before, err := f.reports.GetFinancialSummary(ctx, admin, period.AllTime())
	require.NoError(t, err)

	price := decimal.RequireFromString("45.00")
	cost := decimal.RequireFromString("33.00")
	_, err = f.ledger.UpdateItem(ctx, admin, item.ID, stock.Patch{Price: &price, CostPrice: &cost}, nil)
	require.NoError(t, err)

	after, err := f.reports.GetFinancialSummary(ctx, admin, period.AllTime())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.True(t, after.Revenue.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, after.COGS.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, after.Losses.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, after.GrossProfit.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, after.NetProfit.IsZero())
}

func TestFinancialSummaryWindow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	item := f.item(t, "Manteiga", "10", "5", 50)

	_, err := f.sales.RecordSale(ctx, seller, item.ID, 1)
	require.NoError(t, err)

	future := time.Now().Add(time.Hour)
	empty, err := f.reports.GetFinancialSummary(ctx, admin, period.Between(future, future.Add(time.Hour)))
	require.NoError(t, err)
	assert.True(t, empty.Revenue.IsZero())

	_, err = f.reports.GetFinancialSummary(ctx, admin, period.Between(future, future.Add(-2*time.Hour)))
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestFinancialSummaryRequiresManager(t *testing.T) {
	f := setup(t)
	_, err := f.reports.GetFinancialSummary(context.Background(), seller, period.AllTime())
	assert.True(t, errors.Is(err, apperr.ErrAuthorization))

	_, err = f.reports.Valuation(context.Background(), seller)
	assert.True(t, errors.Is(err, apperr.ErrAuthorization))
}

func TestValuation(t *testing.T) {
	f := setup(t)
	f.item(t, "A", "2.00", "1.00", 5)
	f.item(t, "B", "3.00", "2.00", 85)

	v, err := f.reports.Valuation(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 2, v.ItemCount)
	assert.True(t, v.TotalValue.Equal(decimal.RequireFromString("265.00")))
	assert.True(t, v.TotalCost.Equal(decimal.RequireFromString("175.00")))
	assert.Equal(t, 1, v.ByStatus[stock.StatusLow])
	assert.Equal(t, 1, v.ByStatus[stock.StatusHigh])
}
