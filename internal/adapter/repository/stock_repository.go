package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StockRepository implementa a interface stock.Repository
type StockRepository struct {
	db *pgxpool.Pool
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db *pgxpool.Pool) stock.Repository {
	return &StockRepository{db: db}
}

// FindByID implementa stock.Repository.FindByID
func (r *StockRepository) FindByID(ctx context.Context, id string) (*stock.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM stock_items WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "item de estoque não encontrado: %s", id)
	}
	return item, nil
}

// ListByOrg implementa stock.Repository.ListByOrg
func (r *StockRepository) ListByOrg(ctx context.Context, orgID string) ([]*stock.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM stock_items WHERE org_id = $1 ORDER BY name ASC, id ASC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque: %w", err)
	}
	return collect(rows, scanItem)
}

// ListMovements implementa stock.Repository.ListMovements
func (r *StockRepository) ListMovements(ctx context.Context, itemID string, limit int) ([]*stock.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+movementColumns+` FROM stock_movements
		WHERE stock_item_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações: %w", err)
	}
	return collect(rows, scanMovement)
}
