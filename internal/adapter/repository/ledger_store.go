package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/hugohenrick/bizit/internal/infrastructure/database"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/jackc/pgx/v5"
)

// LedgerStore implementa ledger.Store com transações do PostgreSQL.
// Os registros alterados são travados com SELECT ... FOR UPDATE.
type LedgerStore struct {
	db *database.PostgresDB
}

// NewLedgerStore cria uma nova instância de LedgerStore
func NewLedgerStore(db *database.PostgresDB) *LedgerStore {
	return &LedgerStore{db: db}
}

// InTx implementa ledger.Store.InTx
func (s *LedgerStore) InTx(ctx context.Context, fn func(tx ledger.Tx) error) error {
	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(&pgTx{tx: tx})
	})
	return mapTxError(err)
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) GetItemForUpdate(ctx context.Context, id string) (*stock.Item, error) {
	item, err := scanItem(t.tx.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM stock_items WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFoundOr(err, "item de estoque não encontrado: %s", id)
	}
	return item, nil
}

func (t *pgTx) InsertItem(ctx context.Context, i *stock.Item) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO stock_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		i.ID, i.OrgID, i.Name, i.Category, i.Quantity, i.Price, i.CostPrice,
		i.MinThreshold, i.MaxCapacity, i.Version, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar item de estoque: %w", err)
	}
	return nil
}

func (t *pgTx) SaveItem(ctx context.Context, i *stock.Item) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE stock_items SET
			name = $2, category = $3, quantity = $4, price = $5, cost_price = $6,
			min_threshold = $7, max_capacity = $8, updated_at = $9, version = version + 1
		WHERE id = $1 AND version = $10`,
		i.ID, i.Name, i.Category, i.Quantity, i.Price, i.CostPrice,
		i.MinThreshold, i.MaxCapacity, i.UpdatedAt, i.Version)
	if err != nil {
		return fmt.Errorf("erro ao atualizar item de estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Concurrency(nil, "versão do item %s mudou", i.ID)
	}
	i.Version++
	return nil
}

func (t *pgTx) DeleteItem(ctx context.Context, id string) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("erro ao remover item de estoque: %w", err)
	}
	return nil
}

func (t *pgTx) InsertMovement(ctx context.Context, m *stock.Movement) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO stock_movements (`+movementColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.OrgID, m.StockItemID, m.Delta, m.Reason, m.QuantityAfter, m.ActorID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar movimentação: %w", err)
	}
	return nil
}

func (t *pgTx) InsertSale(ctx context.Context, r *sale.Record) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.OrgID, r.StockItemID, r.StockItemName, r.Quantity, r.UnitPrice,
		r.UnitCost, r.TotalPrice, r.SoldBy, r.SaleDate)
	if err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}
	return nil
}

func (t *pgTx) InsertLoss(ctx context.Context, r *loss.Record) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO losses (`+lossColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		r.ID, r.OrgID, r.StockItemID, r.StockItemName, r.Quantity, r.CostAtLoss,
		r.TotalLoss, r.Reason, r.Notes, r.ReportedBy, r.LossDate)
	if err != nil {
		return fmt.Errorf("erro ao registrar perda: %w", err)
	}
	return nil
}

func (t *pgTx) GetShipmentForUpdate(ctx context.Context, id string) (*supplier.Shipment, error) {
	s, err := scanShipment(t.tx.QueryRow(ctx,
		`SELECT `+shipmentColumns+`
		FROM shipments sh JOIN suppliers s ON s.id = sh.supplier_id
		WHERE sh.id = $1 FOR UPDATE OF sh`, id))
	if err != nil {
		return nil, notFoundOr(err, "remessa não encontrada: %s", id)
	}
	return s, nil
}

func (t *pgTx) SaveShipment(ctx context.Context, s *supplier.Shipment) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE shipments SET
			status = $2, received_quantity = $3, damaged_quantity = $4,
			received_date = $5, score = $6, updated_at = $7
		WHERE id = $1`,
		s.ID, s.Status, s.ReceivedQuantity, s.DamagedQuantity, s.ReceivedDate, s.Score, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar remessa: %w", err)
	}
	return nil
}
