package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItem(t *testing.T, db *DB, quantity int) *stock.Item {
	t.Helper()
	item, err := stock.NewItem("org-1", stock.Attributes{
		Name:         "Arroz",
		Category:     "Grãos",
		Price:        decimal.NewFromInt(10),
		CostPrice:    decimal.NewFromInt(7),
		MinThreshold: 1,
		MaxCapacity:  100,
	})
	require.NoError(t, err)
	item.Quantity = quantity

	err = NewStore(db).InTx(context.Background(), func(tx ledger.Tx) error {
		return tx.InsertItem(context.Background(), item)
	})
	require.NoError(t, err)
	return item
}

func TestInTxDiscardsWritesOnError(t *testing.T) {
	db := NewDB()
	item := seedItem(t, db, 10)
	ctx := context.Background()
	boom := errors.New("falha")

	err := NewStore(db).InTx(ctx, func(tx ledger.Tx) error {
		locked, err := tx.GetItemForUpdate(ctx, item.ID)
		require.NoError(t, err)
		locked.Quantity = 2
		require.NoError(t, tx.SaveItem(ctx, locked))

		rec, err := sale.NewRecord(locked, 8, "user-1", time.Now())
		require.NoError(t, err)
		require.NoError(t, tx.InsertSale(ctx, rec))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := NewStockRepository(db).FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Quantity)
	assert.Equal(t, 0, stored.Version)

	sales, err := NewSaleRepository(db).ListByOrg(ctx, "org-1", period.AllTime())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaveItemDetectsVersionConflict(t *testing.T) {
	db := NewDB()
	item := seedItem(t, db, 10)
	ctx := context.Background()

	err := NewStore(db).InTx(ctx, func(tx ledger.Tx) error {
		locked, err := tx.GetItemForUpdate(ctx, item.ID)
		require.NoError(t, err)
		locked.Version = 7
		return tx.SaveItem(ctx, locked)
	})
	assert.True(t, errors.Is(err, apperr.ErrConcurrency))
}

func TestSaveItemRequiresLock(t *testing.T) {
	db := NewDB()
	item := seedItem(t, db, 10)
	ctx := context.Background()

	err := NewStore(db).InTx(ctx, func(tx ledger.Tx) error {
		return tx.SaveItem(ctx, item)
	})
	assert.True(t, errors.Is(err, apperr.ErrConcurrency))
}

func TestGetItemForUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	err := NewStore(NewDB()).InTx(ctx, func(tx ledger.Tx) error {
		_, err := tx.GetItemForUpdate(ctx, "nao-existe")
		return err
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestMarkLateOnlyTouchesOverduePending(t *testing.T) {
	db := NewDB()
	repo := NewSupplierRepository(db)
	ctx := context.Background()

	sup, err := supplier.NewSupplier("org-1", "Atacadão Norte", supplier.Contact{})
	require.NoError(t, err)
	require.NoError(t, repo.CreateSupplier(ctx, sup))

	today := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	overdue, err := supplier.NewShipment("org-1", sup.ID, 10, today.AddDate(0, 0, -2), "", "")
	require.NoError(t, err)
	upcoming, err := supplier.NewShipment("org-1", sup.ID, 10, today.AddDate(0, 0, 1), "", "")
	require.NoError(t, err)
	require.NoError(t, repo.CreateShipment(ctx, overdue))
	require.NoError(t, repo.CreateShipment(ctx, upcoming))

	marked, err := repo.MarkLate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	list, err := repo.ListShipments(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, supplier.StatusLate, list[0].Status)
	assert.Equal(t, "Atacadão Norte", list[0].SupplierName)
	assert.Equal(t, supplier.StatusPending, list[1].Status)

	marked, err = repo.MarkLate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestDeleteItemUnlinksShipmentsAndDropsLock(t *testing.T) {
	db := NewDB()
	repo := NewSupplierRepository(db)
	ctx := context.Background()
	item := seedItem(t, db, 5)

	sup, err := supplier.NewSupplier("org-1", "Cerealista Oeste", supplier.Contact{})
	require.NoError(t, err)
	require.NoError(t, repo.CreateSupplier(ctx, sup))
	shipment, err := supplier.NewShipment("org-1", sup.ID, 10, time.Now(), "", item.ID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateShipment(ctx, shipment))

	err = NewStore(db).InTx(ctx, func(tx ledger.Tx) error {
		return tx.DeleteItem(ctx, item.ID)
	})
	require.NoError(t, err)

	stored, err := repo.FindShipmentByID(ctx, shipment.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.StockItemID)

	db.locksMu.Lock()
	_, held := db.locks["item:"+item.ID]
	db.locksMu.Unlock()
	assert.False(t, held)
}
