package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

// ListByOrg implementa sale.Repository.ListByOrg. Limites nulos não filtram.
func (r *SaleRepository) ListByOrg(ctx context.Context, orgID string, window period.Window) ([]*sale.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		WHERE org_id = $1
			AND ($2::timestamptz IS NULL OR sale_date >= $2)
			AND ($3::timestamptz IS NULL OR sale_date <= $3)
		ORDER BY sale_date DESC`,
		orgID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	return collect(rows, scanSale)
}
